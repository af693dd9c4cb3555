package core

import "time"

// RuntimeConfig contains the driver settings passed to a session at start.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Input poll timeout; paces the loop
	Seed    int64         // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    10 * time.Millisecond,
		Seed:    0,
	}
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
