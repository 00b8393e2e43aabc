package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeItemUnitsAreConsistent(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 86_400_000, 1_654_300_800_000, -5_000} {
		item := NewTimeItem(ms)
		v := float64(ms)

		assert.Equal(t, v, item.Milliseconds)
		assert.Equal(t, v/1000, item.Seconds)
		assert.Equal(t, v/60000, item.Minutes)
		assert.Equal(t, v/3600000, item.Hours)
		assert.Equal(t, v/86400000, item.Days)
		assert.Equal(t, v/604800000, item.Weeks)
		assert.Equal(t, v/31536000000, item.Years)
	}
}

func TestValueCoversEveryUnit(t *testing.T) {
	item := NewTimeItem(604_800_000)

	expected := map[TimeUnit]float64{
		UnitMilliseconds: 604_800_000,
		UnitSeconds:      604_800,
		UnitMinutes:      10_080,
		UnitHours:        168,
		UnitDays:         7,
		UnitWeeks:        1,
		UnitYears:        604_800_000.0 / 31_536_000_000.0,
	}
	require.Len(t, TimeUnits(), len(expected))

	for _, unit := range TimeUnits() {
		got, err := item.Value(unit)
		require.NoError(t, err)
		assert.Equal(t, expected[unit], got, unit)
	}
}

func TestValueRejectsUnknownUnit(t *testing.T) {
	_, err := NewTimeItem(1).Value("fortnights")
	assert.ErrorIs(t, err, ErrInvalidTimeUnit)
	assert.Contains(t, err.Error(), "milliseconds, seconds")
}

func TestParseTimeUnit(t *testing.T) {
	unit, err := ParseTimeUnit(" Hours ")
	require.NoError(t, err)
	assert.Equal(t, UnitHours, unit)

	_, err = ParseTimeUnit("")
	assert.ErrorIs(t, err, ErrInvalidTimeUnit)
}

func TestCompareTimesIsSymmetric(t *testing.T) {
	a := NewTimeItem(1_000_000)
	b := NewTimeItem(4_600_000)

	for _, unit := range TimeUnits() {
		ab, err := CompareTimes(a, b, unit)
		require.NoError(t, err)
		ba, err := CompareTimes(b, a, unit)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, unit)
	}

	diff, err := CompareTimes(a, b, UnitHours)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, diff, 1e-9)
}

func TestCompareTimesInvalidUnit(t *testing.T) {
	_, err := CompareTimes(NewTimeItem(1), NewTimeItem(2), "eons")
	assert.ErrorIs(t, err, ErrInvalidTimeUnit)
}

func TestPlayerName(t *testing.T) {
	assert.Equal(t, "", PlayerName(nil))
	assert.Equal(t, "Steve", PlayerName(Player("Steve")))
}

func TestRecordKeyIgnoresTimestamp(t *testing.T) {
	a := TimeRecord{Identifier: "daily", Player: "Steve", Timestamp: 1}
	b := TimeRecord{Identifier: "daily", Player: "Steve", Timestamp: 2}
	c := TimeRecord{Identifier: "daily", Timestamp: 1}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, NewTimeItem(2), b.Item())
}
