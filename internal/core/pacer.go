package core

import "time"

// Clock abstracts monotonic time so frame pacing can be tested.
type Clock interface {
	// Now returns the monotonic time elapsed since the clock started.
	Now() time.Duration
	// SleepUntil blocks until Now() >= t.
	SleepUntil(t time.Duration)
}

// systemClock is the wall-clock implementation of Clock.
type systemClock struct {
	boot time.Time
}

// NewSystemClock returns a Clock anchored at the current instant.
func NewSystemClock() Clock {
	return systemClock{boot: time.Now()}
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.boot)
}

func (c systemClock) SleepUntil(t time.Duration) {
	if d := t - c.Now(); d > 0 {
		time.Sleep(d)
	}
}

// Pacer schedules fixed-period ticks without drift.
// Each deadline is anchored to the measured start of the current tick, so
// an overrun tick starts the next one immediately and does not shift the
// ticks after it.
type Pacer struct {
	clock  Clock
	period time.Duration
}

// NewPacer creates a pacer for the given period.
func NewPacer(clock Clock, period time.Duration) *Pacer {
	return &Pacer{clock: clock, period: period}
}

// Begin marks the start of a tick and returns its timestamp.
func (p *Pacer) Begin() time.Duration {
	return p.clock.Now()
}

// Deadline returns the instant the tick started at tickStart should end.
func (p *Pacer) Deadline(tickStart time.Duration) time.Duration {
	return tickStart + p.period
}

// Wait sleeps out the remainder of the tick started at tickStart.
// It returns immediately if the tick already overran.
func (p *Pacer) Wait(tickStart time.Duration) {
	p.clock.SleepUntil(p.Deadline(tickStart))
}
