package storage

import "context"

// Storage is a scoreboard: named objectives, each holding zero-valued
// entries whose names carry the data.
type Storage interface {
	// EnsureObjective registers an objective.
	// Returns model.ErrObjectiveExists if it is already registered.
	EnsureObjective(ctx context.Context, name string) error

	// SetEntry creates or overwrites a zero-valued entry in an objective.
	// Returns model.ErrObjectiveNotFound if the objective is not registered.
	SetEntry(ctx context.Context, objective, entry string) error

	// ResetEntry removes an entry.
	// Returns model.ErrEntryNotFound if the entry is not tracked.
	ResetEntry(ctx context.Context, objective, entry string) error

	// ListEntries returns every entry name in the backend's listing order
	ListEntries(ctx context.Context, objective string) ([]string, error)
}
