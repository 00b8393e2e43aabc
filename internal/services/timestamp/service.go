package timestamp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/timestamper/internal/codec"
	"github.com/mcoot/timestamper/internal/dependencies/clock"
	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/storage"
)

// DefaultObjective is the objective the original add-on writes to
const DefaultObjective = "js.dates"

// Config holds configuration for the timestamp service
type Config struct {
	Objective string
}

// DefaultConfig returns default timestamp configuration
func DefaultConfig() Config {
	return Config{
		Objective: DefaultObjective,
	}
}

// Service saves and loads named points in time.
//
// Storage failures are logged and degrade to "nothing happened" or
// "nothing found"; only a failed write is reported to the caller.
// The service keeps no state between calls.
type Service struct {
	storage storage.Storage
	codec   codec.Codec
	clock   clock.Clock
	logger  *slog.Logger

	objective string
}

// New creates a new timestamp Service
func New(storage storage.Storage, codec codec.Codec, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.Objective == "" {
		cfg.Objective = DefaultConfig().Objective
	}
	return &Service{
		storage:   storage,
		codec:     codec,
		clock:     clock,
		logger:    logger,
		objective: cfg.Objective,
	}
}

// Objective returns the objective records are stored under
func (s *Service) Objective() string {
	return s.objective
}

// SaveTime stores the current time under identifier, optionally scoped to
// a player. Any earlier record for the same (identifier, player) is replaced.
func (s *Service) SaveTime(ctx context.Context, identifier string, player model.PlayerHandle) error {
	if err := s.storage.EnsureObjective(ctx, s.objective); err != nil && !errors.Is(err, model.ErrObjectiveExists) {
		s.logger.Warn("could not ensure objective",
			slog.String("objective", s.objective),
			slog.String("error", err.Error()),
		)
	}

	rec := model.TimeRecord{
		Identifier: identifier,
		Player:     model.PlayerName(player),
	}
	s.resetExisting(ctx, rec.Key())

	rec.Timestamp = clock.Millis(s.clock)
	entry, err := s.codec.Encode(rec)
	if err != nil {
		s.logger.Error("could not encode time", slog.String("identifier", identifier), slog.String("error", err.Error()))
		return err
	}

	if err := s.storage.SetEntry(ctx, s.objective, entry); err != nil {
		s.logger.Error("could not save time",
			slog.String("identifier", identifier),
			slog.String("player", rec.Player),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.logger.Debug("time saved",
		slog.String("identifier", identifier),
		slog.String("player", rec.Player),
		slog.Int64("timestamp", rec.Timestamp),
	)
	return nil
}

// resetExisting removes the first stored record with the given key
func (s *Service) resetExisting(ctx context.Context, key model.RecordKey) {
	for _, e := range s.entries(ctx) {
		if e.record.Key() != key {
			continue
		}
		if err := s.storage.ResetEntry(ctx, s.objective, e.name); err != nil && !errors.Is(err, model.ErrEntryNotFound) {
			s.logger.Warn("could not reset previous time",
				slog.String("identifier", key.Identifier),
				slog.String("error", err.Error()),
			)
		}
		return
	}
}

// GetTime returns the current time
func (s *Service) GetTime() model.TimeItem {
	return model.NewTimeItem(clock.Millis(s.clock))
}

// LoadTime returns the saved time for identifier. With a player, only that
// player's record matches; without one, the first record with the
// identifier matches whoever it belongs to.
func (s *Service) LoadTime(ctx context.Context, identifier string, player model.PlayerHandle) (model.TimeItem, bool) {
	name := model.PlayerName(player)
	for _, e := range s.entries(ctx) {
		if e.record.Identifier != identifier {
			continue
		}
		if name != "" && e.record.Player != name {
			continue
		}
		return e.record.Item(), true
	}
	return model.TimeItem{}, false
}

// CompareTimes returns |a - b| in the given unit
func (s *Service) CompareTimes(a, b model.TimeItem, unit model.TimeUnit) (float64, error) {
	return model.CompareTimes(a, b, unit)
}

// Elapsed returns how long ago identifier was saved, in the given unit.
// The bool is false if nothing was saved.
func (s *Service) Elapsed(ctx context.Context, identifier string, player model.PlayerHandle, unit model.TimeUnit) (float64, bool, error) {
	parsed, err := model.ParseTimeUnit(string(unit))
	if err != nil {
		return 0, false, err
	}
	saved, ok := s.LoadTime(ctx, identifier, player)
	if !ok {
		return 0, false, nil
	}
	diff, err := model.CompareTimes(s.GetTime(), saved, parsed)
	return diff, true, err
}

// ListTimes returns every decodable record in listing order
func (s *Service) ListTimes(ctx context.Context) []model.TimeRecord {
	entries := s.entries(ctx)
	records := make([]model.TimeRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.record)
	}
	return records
}

type storedEntry struct {
	name   string
	record model.TimeRecord
}

// entries lists and decodes the objective. Listing failures yield an
// empty result; entries from other writers are skipped.
func (s *Service) entries(ctx context.Context) []storedEntry {
	names, err := s.storage.ListEntries(ctx, s.objective)
	if err != nil {
		s.logger.Debug("could not list times", slog.String("objective", s.objective), slog.String("error", err.Error()))
		return nil
	}

	entries := make([]storedEntry, 0, len(names))
	for _, name := range names {
		if !s.codec.Matches(name) {
			continue
		}
		rec, err := s.codec.Decode(name)
		if err != nil {
			s.logger.Debug("skipping undecodable entry", slog.String("entry", name), slog.String("error", err.Error()))
			continue
		}
		entries = append(entries, storedEntry{name: name, record: rec})
	}
	return entries
}
