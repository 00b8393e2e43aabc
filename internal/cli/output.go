package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/mcoot/timestamper/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.TimeItem:
		o.printTimeItem(v)
	case TimeList:
		o.printTimeList(v)
	case CompareResult:
		o.printCompareResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TimeEntry is one saved time in list output
type TimeEntry struct {
	Identifier   string  `json:"identifier"`
	Player       string  `json:"player,omitempty"`
	Milliseconds float64 `json:"milliseconds"`
}

// TimeList is the result of the list command
type TimeList struct {
	Objective string      `json:"objective"`
	Times     []TimeEntry `json:"times"`
}

// CompareResult is the result of the compare command
type CompareResult struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Unit       string  `json:"unit"`
	Difference float64 `json:"difference"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (o *Output) printTimeItem(t model.TimeItem) {
	for _, unit := range model.TimeUnits() {
		v, _ := t.Value(unit)
		fmt.Fprintf(o.w, "%s: %s\n", unit, formatFloat(v))
	}
}

func (o *Output) printTimeList(l TimeList) {
	if len(l.Times) == 0 {
		fmt.Fprintf(o.w, "No times saved in %s\n", l.Objective)
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tPLAYER\tMILLISECONDS")
	for _, e := range l.Times {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Identifier, player, formatFloat(e.Milliseconds))
	}
	_ = tw.Flush()
}

func (o *Output) printCompareResult(c CompareResult) {
	fmt.Fprintf(o.w, "%s %s between %s and %s\n", formatFloat(c.Difference), c.Unit, c.A, c.B)
}
