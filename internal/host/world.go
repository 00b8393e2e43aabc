// Package host simulates the scripting host's world command runner,
// covering the scoreboard commands the time store issues.
package host

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Errors returned for commands the world cannot run
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrSyntax         = errors.New("syntax error")
)

// CommandError is a command the world understood but rejected.
// Message mirrors the status text the host reports.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

type score struct {
	objective string
	value     int
}

// World is an in-memory scoreboard driven by text commands
type World struct {
	mu sync.Mutex

	objectives []string
	// participants in first-tracked order
	participants []string
	scores       map[string][]score
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		scores: make(map[string][]score),
	}
}

// RunCommand executes a single command and returns its status message
func (w *World) RunCommand(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	args, err := tokenize(strings.TrimPrefix(strings.TrimSpace(command), "/"))
	if err != nil {
		return "", err
	}
	if len(args) < 2 || args[0] != "scoreboard" {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch args[1] {
	case "objectives":
		return w.objectivesCmd(command, args[2:])
	case "players":
		return w.playersCmd(command, args[2:])
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (w *World) objectivesCmd(command string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: %s", ErrSyntax, command)
	}
	switch args[0] {
	case "add":
		if len(args) < 3 {
			return "", fmt.Errorf("%w: %s", ErrSyntax, command)
		}
		name := args[1]
		if slices.Contains(w.objectives, name) {
			return "", &CommandError{Command: command, Message: "An objective already exists by that name"}
		}
		w.objectives = append(w.objectives, name)
		return fmt.Sprintf("Added new objective '%s' successfully", name), nil
	case "remove":
		if len(args) < 2 {
			return "", fmt.Errorf("%w: %s", ErrSyntax, command)
		}
		name := args[1]
		i := slices.Index(w.objectives, name)
		if i < 0 {
			return "", noObjective(command, name)
		}
		w.objectives = slices.Delete(w.objectives, i, i+1)
		for p := range w.scores {
			w.dropScore(p, name)
		}
		return fmt.Sprintf("Removed objective '%s' successfully", name), nil
	case "list":
		if len(w.objectives) == 0 {
			return "", &CommandError{Command: command, Message: "There are no objectives on the scoreboard"}
		}
		return fmt.Sprintf("Showing %d objective(s) on the scoreboard:\n %s",
			len(w.objectives), strings.Join(w.objectives, ", ")), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrSyntax, command)
	}
}

func (w *World) playersCmd(command string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: %s", ErrSyntax, command)
	}
	switch args[0] {
	case "set", "add":
		if len(args) < 4 {
			return "", fmt.Errorf("%w: %s", ErrSyntax, command)
		}
		target, objective := args[1], args[2]
		value, err := strconv.Atoi(args[3])
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrSyntax, command)
		}
		if !slices.Contains(w.objectives, objective) {
			return "", noObjective(command, objective)
		}
		if args[0] == "add" {
			if current, ok := w.score(target, objective); ok {
				value += current
			}
		}
		w.setScore(target, objective, value)
		return fmt.Sprintf("Set score of %s for player %s to %d", objective, target, value), nil
	case "reset":
		if len(args) < 2 {
			return "", fmt.Errorf("%w: %s", ErrSyntax, command)
		}
		target := args[1]
		if _, ok := w.scores[target]; !ok {
			return "", &CommandError{Command: command, Message: fmt.Sprintf("Could not find %s on the scoreboard", target)}
		}
		if len(args) >= 3 {
			w.dropScore(target, args[2])
		} else {
			w.untrack(target)
		}
		return fmt.Sprintf("Reset scores of player %s", target), nil
	case "list":
		if len(w.participants) == 0 {
			return "", &CommandError{Command: command, Message: "There are no tracked players on the scoreboard"}
		}
		return fmt.Sprintf("Showing %d tracked players on the scoreboard:\n %s",
			len(w.participants), strings.Join(w.participants, ", ")), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrSyntax, command)
	}
}

func (w *World) score(target, objective string) (int, bool) {
	for _, sc := range w.scores[target] {
		if sc.objective == objective {
			return sc.value, true
		}
	}
	return 0, false
}

func (w *World) setScore(target, objective string, value int) {
	scores, tracked := w.scores[target]
	if !tracked {
		w.participants = append(w.participants, target)
	}
	for i := range scores {
		if scores[i].objective == objective {
			scores[i].value = value
			return
		}
	}
	w.scores[target] = append(scores, score{objective: objective, value: value})
}

func (w *World) dropScore(target, objective string) {
	scores := slices.DeleteFunc(w.scores[target], func(sc score) bool {
		return sc.objective == objective
	})
	if len(scores) == 0 {
		w.untrack(target)
		return
	}
	w.scores[target] = scores
}

func (w *World) untrack(target string) {
	delete(w.scores, target)
	w.participants = slices.DeleteFunc(w.participants, func(p string) bool {
		return p == target
	})
}

func noObjective(command, name string) error {
	return &CommandError{Command: command, Message: fmt.Sprintf("No objective was found by the name '%s'", name)}
}

// tokenize splits a command on spaces, keeping double-quoted
// arguments together. A backslash escapes the next character inside quotes.
func tokenize(command string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		started bool
	)
	for i := 0; i < len(command); i++ {
		c := command[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(command):
			i++
			current.WriteByte(command[i])
		case c == '"':
			inQuote = !inQuote
			started = true
		case c == ' ' && !inQuote:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteByte(c)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unterminated quote", ErrSyntax)
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}
