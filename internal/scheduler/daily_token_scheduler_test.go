package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestStart_IssuesImmediately(t *testing.T) {
	var calls atomic.Int64
	issuer := IssuerFunc(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	s := NewDailyTokenScheduler(issuer, zap.NewNop(), fixedClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}, 5*time.Second)
	s.Start(context.Background())
	defer s.Stop()

	assert.Equal(t, int64(1), calls.Load())
}

func TestStart_FailedRunKeepsSchedule(t *testing.T) {
	var calls atomic.Int64
	issuer := IssuerFunc(func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("store unavailable")
	})

	s := NewDailyTokenScheduler(issuer, zap.NewNop(), fixedClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}, 0)

	// Start must survive the failed first run and still arm the timer.
	require.NotPanics(t, func() {
		s.Start(context.Background())
	})
	defer s.Stop()

	assert.Equal(t, int64(1), calls.Load())
	s.mu.Lock()
	assert.NotNil(t, s.timer)
	s.mu.Unlock()
}

func TestNextRunAfter(t *testing.T) {
	s := NewDailyTokenScheduler(IssuerFunc(func(context.Context) error { return nil }), zap.NewNop(), fixedClock{}, 5*time.Second)

	at := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 5, 0, time.UTC), s.NextRunAfter(at))

	// A run landing right after midnight targets the next day.
	justAfter := time.Date(2024, 6, 2, 0, 0, 6, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 5, 0, time.UTC), s.NextRunAfter(justAfter))
}

func TestStop_CancelsPendingRuns(t *testing.T) {
	var calls atomic.Int64
	issuer := IssuerFunc(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	s := NewDailyTokenScheduler(issuer, zap.NewNop(), fixedClock{t: time.Now()}, 0)
	s.Start(context.Background())
	s.Stop()

	// Only the immediate run happened; the midnight timer is stopped.
	assert.Equal(t, int64(1), calls.Load())
}
