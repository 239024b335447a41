package core

import "time"

// DefaultTickRate is the fixed logical clock of the simulation (20 Hz).
const DefaultTickRate = 20

// DefaultKeyHold bridges the gap between a key press and the terminal's
// auto-repeat so that holding a key reads as a steady level.
const DefaultKeyHold = 200 * time.Millisecond

// RuntimeConfig contains configuration passed to the simulation at startup.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Simulation ticks per second
	Seed     uint32        // Boot RNG seed; 0 means the built-in boot constant
	KeyHold  time.Duration // How long a key press counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  23,
		TickRate: DefaultTickRate,
		KeyHold:  DefaultKeyHold,
	}
}

// TickPeriod returns the duration of one tick.
func (c RuntimeConfig) TickPeriod() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Hold returns the key hold window, falling back to the default.
func (c RuntimeConfig) Hold() time.Duration {
	if c.KeyHold <= 0 {
		return DefaultKeyHold
	}
	return c.KeyHold
}
