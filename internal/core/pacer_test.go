package core

import (
	"testing"
	"time"
)

// fakeClock advances only when told to or when slept on.
type fakeClock struct {
	now    time.Duration
	sleeps int
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) SleepUntil(t time.Duration) {
	if t > c.now {
		c.now = t
		c.sleeps++
	}
}

func TestPacerWaitsOutRemainder(t *testing.T) {
	clk := &fakeClock{}
	p := NewPacer(clk, 50*time.Millisecond)

	start := p.Begin()
	clk.now += 12 * time.Millisecond // work
	p.Wait(start)

	if clk.now != 50*time.Millisecond {
		t.Errorf("tick should end at 50ms, ended at %v", clk.now)
	}
}

func TestPacerOverrunDoesNotCompound(t *testing.T) {
	clk := &fakeClock{}
	p := NewPacer(clk, 50*time.Millisecond)

	// Tick 1 overruns by 30ms
	start := p.Begin()
	clk.now += 80 * time.Millisecond
	p.Wait(start)
	if clk.now != 80*time.Millisecond || clk.sleeps != 0 {
		t.Fatalf("overrun tick should not sleep, now=%v sleeps=%d", clk.now, clk.sleeps)
	}

	// Tick 2 is anchored to its own start, not to the missed 50ms deadline
	start = p.Begin()
	clk.now += 10 * time.Millisecond
	p.Wait(start)
	if clk.now != 130*time.Millisecond {
		t.Errorf("tick 2 should end at 130ms, ended at %v", clk.now)
	}
}

func TestPacerSteadyCadence(t *testing.T) {
	clk := &fakeClock{}
	p := NewPacer(clk, 50*time.Millisecond)

	for i := 0; i < 20; i++ {
		start := p.Begin()
		clk.now += 5 * time.Millisecond
		p.Wait(start)
	}

	if clk.now != time.Second {
		t.Errorf("20 ticks at 20Hz should take 1s, took %v", clk.now)
	}
}

func TestTickPeriod(t *testing.T) {
	if got := DefaultConfig().TickPeriod(); got != 50*time.Millisecond {
		t.Errorf("default tick period = %v, want 50ms", got)
	}
	if got := (RuntimeConfig{}).TickPeriod(); got != 50*time.Millisecond {
		t.Errorf("zero tick rate should fall back to 20Hz, got %v", got)
	}
}

func TestRuntimeConfigHold(t *testing.T) {
	if got := DefaultConfig().Hold(); got != DefaultKeyHold {
		t.Errorf("DefaultConfig().Hold() = %v, want %v", got, DefaultKeyHold)
	}
	if got := (RuntimeConfig{KeyHold: -1}).Hold(); got != DefaultKeyHold {
		t.Errorf("negative hold should fall back, got %v", got)
	}
	if got := (RuntimeConfig{KeyHold: time.Second}).Hold(); got != time.Second {
		t.Errorf("Hold() = %v, want 1s", got)
	}
}
