package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-06-01", DateString(at))
}

func TestNextMidnight(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("TST", 3*3600)
	at := time.Date(2024, 6, 1, 14, 30, 0, 0, loc)

	next := NextMidnight(at, 0)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, loc), next)

	withOffset := NextMidnight(at, 5*time.Second)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 5, 0, loc), withOffset)
}

func TestNextMidnight_MonthRollover(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), NextMidnight(at, 0))
}

func TestNextMidnight_JustAfterMidnight(t *testing.T) {
	t.Parallel()

	// A run fired moments after midnight schedules for the following day,
	// not for the midnight that just passed.
	at := time.Date(2024, 6, 2, 0, 0, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), NextMidnight(at, 0))
}

func TestSystemNow(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := System{}.Now()
	assert.False(t, got.Before(before))
}
