package core

import (
	"context"
	"time"
)

// Clock blocks the game loop until the next tick boundary.
type Clock interface {
	// Wait returns at the next tick, or with ctx.Err() when ctx is done.
	Wait(ctx context.Context) error
}

// TickerClock is a Clock backed by time.Ticker. Ticks missed by a slow
// loop are dropped, not queued.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock starts a clock at tickRate ticks per second.
// Non-positive rates fall back to the default of 10.
func NewTickerClock(tickRate int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(TickInterval(tickRate))}
}

// Wait blocks until the next tick.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// TickInterval converts a tick rate to the duration of one tick.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}
