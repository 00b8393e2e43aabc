// Package scoreboard stores entries in a scripting host's scoreboard by
// issuing text commands through the host's command runner.
package scoreboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/storage"
)

// CommandRunner runs one host command and returns its status message
type CommandRunner interface {
	RunCommand(ctx context.Context, command string) (string, error)
}

// Storage adapts a host command runner to the storage interface.
//
// The host cannot tell us why a command failed, so EnsureObjective and
// ResetEntry map any failure to ErrObjectiveExists and ErrEntryNotFound.
// ListEntries ignores the objective: the host lists every tracked name.
type Storage struct {
	runner CommandRunner
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New creates a scoreboard storage over the given runner
func New(runner CommandRunner) *Storage {
	return &Storage{runner: runner}
}

func (s *Storage) EnsureObjective(ctx context.Context, name string) error {
	if _, err := s.runner.RunCommand(ctx, fmt.Sprintf("scoreboard objectives add %s dummy", name)); err != nil {
		return fmt.Errorf("%w: %v", model.ErrObjectiveExists, err)
	}
	return nil
}

func (s *Storage) SetEntry(ctx context.Context, objective, entry string) error {
	cmd := fmt.Sprintf("scoreboard players set %s %s 0", quote(entry), quote(objective))
	if _, err := s.runner.RunCommand(ctx, cmd); err != nil {
		return fmt.Errorf("set entry: %w", err)
	}
	return nil
}

func (s *Storage) ResetEntry(ctx context.Context, objective, entry string) error {
	if _, err := s.runner.RunCommand(ctx, fmt.Sprintf("scoreboard players reset %s", quote(entry))); err != nil {
		return fmt.Errorf("%w: %v", model.ErrEntryNotFound, err)
	}
	return nil
}

func (s *Storage) ListEntries(ctx context.Context, objective string) ([]string, error) {
	out, err := s.runner.RunCommand(ctx, "scoreboard players list")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return parseListing(out)
}

// parseListing reads the comma-separated names on the second line of
// the host's listing output
func parseListing(out string) ([]string, error) {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return nil, model.ErrMalformedListing
	}

	items := strings.Split(lines[1], ",")
	entries := make([]string, 0, len(items))
	for _, item := range items {
		entries = append(entries, strings.TrimPrefix(item, " "))
	}
	return entries, nil
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
