package model

import "errors"

// Common errors used across the application
var (
	// Time errors
	ErrTimeNotFound    = errors.New("time not found")
	ErrInvalidTimeUnit = errors.New("invalid time unit")

	// Scoreboard errors
	ErrObjectiveExists   = errors.New("objective already exists")
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrEntryNotFound     = errors.New("scoreboard entry not found")

	// Codec errors
	ErrMalformedEntry   = errors.New("malformed scoreboard entry")
	ErrMalformedListing = errors.New("malformed scoreboard listing")
)
