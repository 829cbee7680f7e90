package core

import (
	"context"
	"log"
	"time"
)

// FrameClock turns wall-clock readings into frame deltas. The first reading only calibrates.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick records now and returns the seconds since the previous call. ok is false for the
// calibration sample and for readings that did not move forward.
func (c *FrameClock) Tick(now time.Time) (dt float64, ok bool) {
	if !c.started {
		c.started = true
		c.last = now
		return 0, false
	}
	dt = now.Sub(c.last).Seconds()
	c.last = now
	return dt, dt > 0
}

// Reset makes the next reading a calibration sample again.
func (c *FrameClock) Reset() {
	c.started = false
}

// Loop calls step at a fixed rate with measured frame deltas.
type Loop struct {
	tickRate int
	step     func(dt float64) bool
}

// NewLoop creates a loop; step returns false to stop it.
func NewLoop(tickRate int, step func(dt float64) bool) *Loop {
	return &Loop{
		tickRate: tickRate,
		step:     step,
	}
}

// Run blocks until ctx is done or step asks to stop.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	var clock FrameClock
	clock.Tick(time.Now())

	log.Printf("Game loop started at %d ticks/second", l.tickRate)
	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			dt, ok := clock.Tick(now)
			if !ok {
				continue
			}
			if !l.step(dt) {
				log.Println("Game loop finished")
				return nil
			}
		}
	}
}
