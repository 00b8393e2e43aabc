package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/timestamper/internal/dependencies/clock"
)

// MockClock is a manually driven Clock. It is safe for concurrent use.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set moves the clock to t
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// SetMillis moves the clock to ms milliseconds after the Unix epoch
func (c *MockClock) SetMillis(ms int64) {
	c.Set(time.UnixMilli(ms).UTC())
}
