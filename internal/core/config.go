package core

import "time"

// Fixed gameplay constants.
const (
	GridSize     = 20
	TickInterval = 400 * time.Millisecond
	FrameRate    = 20
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Seed         int64         // RNG seed for fruit placement, 0 means time-based
	TickInterval time.Duration // Simulation step period
	FrameRate    int           // Redraws per second
}

// DefaultConfig returns a RuntimeConfig with the fixed game timings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:         0,
		TickInterval: TickInterval,
		FrameRate:    FrameRate,
	}
}

// EndReason describes why a round ended.
type EndReason string

const (
	ReasonNone EndReason = ""
	ReasonWall EndReason = "wall"
	ReasonSelf EndReason = "self"
	ReasonFull EndReason = "full"
	ReasonQuit EndReason = "quit"
)

// GameState represents the current state of a game.
type GameState struct {
	Score    int       // Fruit eaten this round
	Length   int       // Body length including the head
	GameOver bool      // Whether the round has ended
	Paused   bool      // Whether the game is paused
	Reason   EndReason // Why the round ended, if it did
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Ate   bool // A fruit was eaten during this tick
}
