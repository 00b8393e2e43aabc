package model

import (
	"fmt"
	"math"
	"strings"
)

// TimeUnit names one of the views of a TimeItem
type TimeUnit string

const (
	UnitMilliseconds TimeUnit = "milliseconds"
	UnitSeconds      TimeUnit = "seconds"
	UnitMinutes      TimeUnit = "minutes"
	UnitHours        TimeUnit = "hours"
	UnitDays         TimeUnit = "days"
	UnitWeeks        TimeUnit = "weeks"
	UnitYears        TimeUnit = "years"
)

// Milliseconds per unit. A year is 365 days.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerYear   = 365 * msPerDay
)

var timeUnits = []TimeUnit{
	UnitMilliseconds,
	UnitSeconds,
	UnitMinutes,
	UnitHours,
	UnitDays,
	UnitWeeks,
	UnitYears,
}

// TimeUnits returns every supported unit, smallest first
func TimeUnits() []TimeUnit {
	units := make([]TimeUnit, len(timeUnits))
	copy(units, timeUnits)
	return units
}

// ParseTimeUnit validates a unit name (case-insensitive)
func ParseTimeUnit(s string) (TimeUnit, error) {
	unit := TimeUnit(strings.ToLower(strings.TrimSpace(s)))
	for _, u := range timeUnits {
		if u == unit {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid units: %s)", ErrInvalidTimeUnit, s, validUnitList())
}

func validUnitList() string {
	names := make([]string, len(timeUnits))
	for i, u := range timeUnits {
		names[i] = string(u)
	}
	return strings.Join(names, ", ")
}

// TimeRecord is a single saved time.
// Uniqueness is by (Identifier, Player); an empty Player means world-scoped.
type TimeRecord struct {
	Identifier string
	Player     string
	Timestamp  int64 // milliseconds since the Unix epoch
}

// RecordKey identifies the slot a TimeRecord occupies
type RecordKey struct {
	Identifier string
	Player     string
}

// Key returns the record's uniqueness key
func (r TimeRecord) Key() RecordKey {
	return RecordKey{Identifier: r.Identifier, Player: r.Player}
}

// Item returns the multi-unit view of the record's timestamp
func (r TimeRecord) Item() TimeItem {
	return NewTimeItem(r.Timestamp)
}

// TimeItem is a read-only view of one timestamp in seven units.
// Every field is derived from the same millisecond value.
type TimeItem struct {
	Milliseconds float64 `json:"milliseconds"`
	Seconds      float64 `json:"seconds"`
	Minutes      float64 `json:"minutes"`
	Hours        float64 `json:"hours"`
	Days         float64 `json:"days"`
	Weeks        float64 `json:"weeks"`
	Years        float64 `json:"years"`
}

// NewTimeItem builds a TimeItem from milliseconds since the epoch
func NewTimeItem(ms int64) TimeItem {
	v := float64(ms)
	return TimeItem{
		Milliseconds: v,
		Seconds:      v / msPerSecond,
		Minutes:      v / msPerMinute,
		Hours:        v / msPerHour,
		Days:         v / msPerDay,
		Weeks:        v / msPerWeek,
		Years:        v / msPerYear,
	}
}

// Value returns the item expressed in the given unit
func (t TimeItem) Value(unit TimeUnit) (float64, error) {
	switch unit {
	case UnitMilliseconds:
		return t.Milliseconds, nil
	case UnitSeconds:
		return t.Seconds, nil
	case UnitMinutes:
		return t.Minutes, nil
	case UnitHours:
		return t.Hours, nil
	case UnitDays:
		return t.Days, nil
	case UnitWeeks:
		return t.Weeks, nil
	case UnitYears:
		return t.Years, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid units: %s)", ErrInvalidTimeUnit, unit, validUnitList())
	}
}

// CompareTimes returns |a - b| in the given unit
func CompareTimes(a, b TimeItem, unit TimeUnit) (float64, error) {
	av, err := a.Value(unit)
	if err != nil {
		return 0, err
	}
	bv, err := b.Value(unit)
	if err != nil {
		return 0, err
	}
	return math.Abs(av - bv), nil
}
