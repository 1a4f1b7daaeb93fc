package core

import "time"

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Steps per second
	Seed     int64 // RNG seed; 0 asks the platform to pick one
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Resolved fills in the tick rate and replaces a zero seed with one
// derived from now.
func (c RuntimeConfig) Resolved(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Level    int // 1-based
	GameOver bool
	Paused   bool // Also true while the window is too small to play
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Placed is true when a tile was placed during this tick.
	Placed bool
}
