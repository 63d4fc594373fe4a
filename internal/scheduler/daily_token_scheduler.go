package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/clock"
)

// TokenIssuer is the slice of the attendance service the scheduler needs.
type TokenIssuer interface {
	IssueTokenForToday(ctx context.Context) error
}

// IssuerFunc adapts a function to the TokenIssuer interface.
type IssuerFunc func(ctx context.Context) error

func (f IssuerFunc) IssueTokenForToday(ctx context.Context) error {
	return f(ctx)
}

// DailyTokenScheduler keeps the invariant that a QR token exists for every
// calendar day once that day has begun. Each run re-derives "today" and asks
// for idempotent issuance, so restarts mid-day are safe and never mint a
// duplicate.
type DailyTokenScheduler struct {
	issuer TokenIssuer
	logger *zap.Logger
	clk    clock.Clock
	offset time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	ticker *time.Ticker
}

// NewDailyTokenScheduler builds the scheduler. offset delays each run past
// local midnight.
func NewDailyTokenScheduler(issuer TokenIssuer, logger *zap.Logger, clk clock.Clock, offset time.Duration) *DailyTokenScheduler {
	if clk == nil {
		clk = clock.System{}
	}
	return &DailyTokenScheduler{issuer: issuer, logger: logger, clk: clk, offset: offset}
}

// Start issues immediately for today, then arms the midnight timer. It
// returns after the first run; the schedule continues in the background for
// the lifetime of the process.
func (s *DailyTokenScheduler) Start(ctx context.Context) {
	s.run(ctx)

	now := s.clk.Now()
	nextRun := clock.NextMidnight(now, s.offset)
	delay := nextRun.Sub(now)
	s.logger.Info("daily token scheduler armed",
		zap.Time("next_run", nextRun),
		zap.Duration("delay", delay))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(delay, func() {
		s.run(ctx)

		s.mu.Lock()
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()

		go func() {
			for range ticker.C {
				s.run(ctx)
			}
		}()
	})
}

// Stop cancels pending runs. The in-flight run, if any, completes.
func (s *DailyTokenScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

// NextRunAfter reports when the schedule would fire next following t.
func (s *DailyTokenScheduler) NextRunAfter(t time.Time) time.Time {
	return clock.NextMidnight(t, s.offset)
}

func (s *DailyTokenScheduler) run(ctx context.Context) {
	if err := s.issuer.IssueTokenForToday(ctx); err != nil {
		// A failed run never kills the schedule; the next tick retries.
		s.logger.Error("daily token issuance failed", zap.Error(err))
		return
	}
	s.logger.Info("daily token ensured", zap.String("date", clock.DateString(s.clk.Now())))
}
