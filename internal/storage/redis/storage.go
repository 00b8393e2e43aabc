package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each objective is a sorted set whose members are entry names, all scored 0,
// so entries list in lexical order.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) EnsureObjective(ctx context.Context, name string) error {
	added, err := s.client.SAdd(ctx, objectivesKey(s.cfg.KeyPrefix), name).Result()
	if err != nil {
		return err
	}
	if added == 0 {
		return model.ErrObjectiveExists
	}
	return nil
}

func (s *Storage) SetEntry(ctx context.Context, objective, entry string) error {
	if err := s.requireObjective(ctx, objective); err != nil {
		return err
	}
	return s.client.ZAdd(ctx, objectiveKey(s.cfg.KeyPrefix, objective), redis.Z{Score: 0, Member: entry}).Err()
}

func (s *Storage) ResetEntry(ctx context.Context, objective, entry string) error {
	removed, err := s.client.ZRem(ctx, objectiveKey(s.cfg.KeyPrefix, objective), entry).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return model.ErrEntryNotFound
	}
	return nil
}

func (s *Storage) ListEntries(ctx context.Context, objective string) ([]string, error) {
	if err := s.requireObjective(ctx, objective); err != nil {
		return nil, err
	}
	return s.client.ZRange(ctx, objectiveKey(s.cfg.KeyPrefix, objective), 0, -1).Result()
}

func (s *Storage) requireObjective(ctx context.Context, objective string) error {
	ok, err := s.client.SIsMember(ctx, objectivesKey(s.cfg.KeyPrefix), objective).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrObjectiveNotFound
	}
	return nil
}
