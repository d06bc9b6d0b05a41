package scheduler

import (
	"context"
	"sync"
	"time"

	"GazetteDigest/internal/ports"
)

// DailyScheduler fires a job once a day at a fixed hour in a time zone.
type DailyScheduler struct {
	hour int
	loc  *time.Location
	now  func() time.Time

	mu   sync.Mutex
	stop chan struct{}
}

var _ ports.Scheduler = (*DailyScheduler)(nil)

// NewDailyScheduler runs at hour:00 in loc; a nil loc means UTC.
func NewDailyScheduler(hour int, loc *time.Location) *DailyScheduler {
	if loc == nil {
		loc = time.UTC
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}
	return &DailyScheduler{hour: hour, loc: loc, now: time.Now}
}

// NextRun returns the first run time strictly after from.
func (d *DailyScheduler) NextRun(from time.Time) time.Time {
	local := from.In(d.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), d.hour, 0, 0, 0, d.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Start launches the timer goroutine; a second call is a no-op.
func (d *DailyScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil
	}

	stop := make(chan struct{})
	d.stop = stop
	go func() {
		for {
			wait := time.Until(d.NextRun(d.now()))
			timer := time.NewTimer(wait)
			select {
			case t := <-timer.C:
				job(t.In(d.loc))
			case <-ctx.Done():
				timer.Stop()
				return
			case <-stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the timer goroutine.
func (d *DailyScheduler) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop == nil {
		return nil
	}
	close(d.stop)
	d.stop = nil
	return nil
}
