package clock

import "time"

// Clock is the source of the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Millis returns c's current time as milliseconds since the Unix epoch
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}
