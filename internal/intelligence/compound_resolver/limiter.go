package compound_resolver

import (
	"context"
	"sync"
	"time"
)

// DefaultMinInterval is the minimum spacing between two outbound calls.
const DefaultMinInterval = 200 * time.Millisecond

// Spacer enforces a minimum interval between successive calls to Wait.
// Callers queue on the mutex, so outbound calls are serialised.
type Spacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewSpacer returns a Spacer with the given interval.  A non-positive
// interval disables spacing.
func NewSpacer(interval time.Duration) *Spacer {
	return &Spacer{interval: interval, now: time.Now}
}

// Wait blocks until at least the interval has passed since the previous
// successful Wait, or until ctx is done.  A cancelled wait does not count as
// a call.
func (s *Spacer) Wait(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.interval > 0 && !s.last.IsZero() {
		if d := s.last.Add(s.interval).Sub(s.now()); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}
	s.last = s.now()
	return nil
}

// Interval returns the configured spacing.
func (s *Spacer) Interval() time.Duration { return s.interval }

//Personal.AI order the ending
