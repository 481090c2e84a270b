package kernel_test

import (
	"testing"
	"time"

	"studel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 3, 14, 18, 30, 0, 0, loc)

	start, end := kernel.DayBounds(now)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), end)
}

func TestWithinDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 3, 14, 18, 30, 0, 0, loc)

	testCases := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{"local midnight is included", time.Date(2026, 3, 14, 0, 0, 0, 0, loc), true},
		{"last nanosecond is included", time.Date(2026, 3, 14, 23, 59, 59, 999999999, loc), true},
		{"next midnight is excluded", time.Date(2026, 3, 15, 0, 0, 0, 0, loc), false},
		{"yesterday is excluded", time.Date(2026, 3, 13, 12, 0, 0, 0, loc), false},
		{"same instant in UTC is compared by instant", now.UTC(), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.WithinDay(tc.at, now))
		})
	}
}

func TestSystemClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	now := kernel.NewSystemClock(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, fixed, kernel.ClockFunc(func() time.Time { return fixed }).Now())
}
