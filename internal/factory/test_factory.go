package factory

import (
	"time"

	"github.com/mcoot/timestamper/internal/codec"
	"github.com/mcoot/timestamper/internal/dependencies/mocks"
	"github.com/mcoot/timestamper/internal/services/timestamp"
	"github.com/mcoot/timestamper/internal/storage/memory"
	"github.com/mcoot/timestamper/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, codec.Legacy{}, mockClock, timestamp.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
