package snake

import "github.com/vovakirdan/gesnake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Score  int
	Length int
	HeadX  int
	HeadY  int
	Dir    core.Direction
	FruitX int
	FruitY int
	State  GameStateType
	Reason core.EndReason
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	head := g.body[0]
	return Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Length: len(g.body),
		HeadX:  head.X,
		HeadY:  head.Y,
		Dir:    g.direction,
		FruitX: g.fruit.X,
		FruitY: g.fruit.Y,
		State:  state,
		Reason: g.reason,
	}
}
