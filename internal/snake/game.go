// Package snake implements the grid simulation: a snake that advances one cell
// per tick, eats fruit, and dies on walls or on itself. Steering arrives as a
// core.Gesture once per tick.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/gesnake/internal/core"
)

// Starting layout.
var startBody = []core.Point{
	{X: 5, Y: 10}, // Head
	{X: 4, Y: 10},
	{X: 3, Y: 10},
}

// Game is the snake simulation on a core.GridSize square grid.
type Game struct {
	rng   *rand.Rand
	tick  uint64
	score int
	size  int

	// Snake state
	body      []core.Point // Head at index 0
	occupied  *intmap.Map[int, int]
	direction core.Direction

	fruit core.Point

	// Game state flags
	gameOver bool
	reason   core.EndReason
	paused   bool
}

// New creates a new game. Call Reset before stepping it.
func New() *Game {
	return &Game{size: core.GridSize}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.reason = core.ReasonNone
	g.paused = false

	g.body = append(g.body[:0], startBody...)
	g.rebuildOccupancy()
	g.direction = core.DirRight

	g.spawnFruit()
}

// cellKey maps a point to an occupancy key. The grid is padded by one cell on
// each side so a head that just left the grid never aliases an inner cell.
func (g *Game) cellKey(p core.Point) int {
	return (p.Y+1)*(g.size+2) + (p.X + 1)
}

// rebuildOccupancy recomputes the occupancy set from the body.
func (g *Game) rebuildOccupancy() {
	g.occupied = intmap.New[int, int](g.size * g.size)
	for _, seg := range g.body {
		g.occupy(seg)
	}
}

func (g *Game) occupy(p core.Point) {
	k := g.cellKey(p)
	n, _ := g.occupied.Get(k)
	g.occupied.Put(k, n+1)
}

func (g *Game) vacate(p core.Point) {
	k := g.cellKey(p)
	n, _ := g.occupied.Get(k)
	if n <= 1 {
		g.occupied.Del(k)
		return
	}
	g.occupied.Put(k, n-1)
}

// segmentsAt returns how many body segments cover p.
func (g *Game) segmentsAt(p core.Point) int {
	n, _ := g.occupied.Get(g.cellKey(p))
	return n
}

// spawnFruit places the fruit uniformly on a cell the snake does not cover.
func (g *Game) spawnFruit() {
	free := make([]core.Point, 0, g.size*g.size-len(g.body))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			p := core.Point{X: x, Y: y}
			if !g.occupied.Has(g.cellKey(p)) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.fruit = core.Point{X: -1, Y: -1}
		g.gameOver = true
		g.reason = core.ReasonFull
		return
	}

	g.fruit = free[g.rng.Intn(len(free))]
}

// Step advances the game by one tick: move, eat, check for death, then take
// the steering gesture for the next move.
func (g *Game) Step(gesture core.Gesture) core.StepResult {
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	ate := g.move()
	if ate {
		g.score++
		g.spawnFruit()
	}
	g.checkFail()
	if !g.gameOver {
		g.steer(gesture)
	}

	return core.StepResult{State: g.State(), Ate: ate}
}

// move advances the body one cell. The tail stays in place when the new head
// lands on the fruit, so eating grows the snake by one within the same tick.
func (g *Game) move() bool {
	head := g.body[0].Add(g.direction.Delta())
	ate := head == g.fruit

	if !ate {
		tail := g.body[len(g.body)-1]
		g.body = g.body[:len(g.body)-1]
		g.vacate(tail)
	}

	g.body = append(g.body, core.Point{})
	copy(g.body[1:], g.body)
	g.body[0] = head
	g.occupy(head)

	return ate
}

// checkFail ends the round if the head left the grid or hit the body.
func (g *Game) checkFail() {
	head := g.body[0]
	switch {
	case !head.In(g.size):
		g.gameOver = true
		g.reason = core.ReasonWall
	case g.segmentsAt(head) > 1:
		g.gameOver = true
		g.reason = core.ReasonSelf
	}
}

// steer applies a gesture, ignoring requests to reverse onto the body.
func (g *Game) steer(gesture core.Gesture) {
	dir, ok := gesture.Direction()
	if !ok || dir == g.direction.Opposite() {
		return
	}
	g.direction = dir
}

// SetPaused pauses or resumes the simulation. Has no effect after game over.
func (g *Game) SetPaused(paused bool) {
	if g.gameOver {
		return
	}
	g.paused = paused
}

// TogglePause pauses or resumes the simulation. Has no effect after game over.
func (g *Game) TogglePause() {
	g.SetPaused(!g.paused)
}

// Body returns a copy of the body, head first.
func (g *Game) Body() []core.Point {
	return append([]core.Point(nil), g.body...)
}

// Head returns the head cell.
func (g *Game) Head() core.Point {
	return g.body[0]
}

// Fruit returns the fruit cell.
func (g *Game) Fruit() core.Point {
	return g.fruit
}

// Direction returns the heading the next move will use.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// Size returns the grid edge length.
func (g *Game) Size() int {
	return g.size
}

// Ticks returns the number of simulated moves this round.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Length:   len(g.body),
		GameOver: g.gameOver,
		Paused:   g.paused,
		Reason:   g.reason,
	}
}

// Render draws the field, fruit and snake. Each grid cell covers cellW
// horizontal screen cells so terminals can keep cells roughly square.
func (g *Game) Render(dst *core.Screen, cellW int) {
	if cellW < 1 {
		cellW = 1
	}
	dst.Fill(' ', core.ColorField)

	g.renderCell(dst, g.fruit, cellW, core.ColorFruit)
	for i := len(g.body) - 1; i >= 0; i-- {
		c := core.ColorSnake
		if i == 0 {
			c = core.ColorSnakeHead
		}
		g.renderCell(dst, g.body[i], cellW, c)
	}
}

func (g *Game) renderCell(dst *core.Screen, p core.Point, cellW int, c core.Color) {
	if !p.In(g.size) {
		return
	}
	dst.DrawRect(core.NewRect(p.X*cellW, p.Y, cellW, 1), ' ', c)
}

// OverlayLines returns the message to show over the field, if any.
func (g *Game) OverlayLines() (line1, line2 string, ok bool) {
	switch {
	case g.gameOver:
		return "Game Over", fmt.Sprintf("%s - R to restart", reasonText(g.reason)), true
	case g.paused:
		return "Paused", "Press P to continue", true
	}
	return "", "", false
}

// RenderOverlay draws a centered boxed message when paused or over.
func (g *Game) RenderOverlay(dst *core.Screen) {
	line1, line2, ok := g.OverlayLines()
	if !ok {
		return
	}

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorOverlay)
}

func reasonText(r core.EndReason) string {
	switch r {
	case core.ReasonWall:
		return "Hit the wall"
	case core.ReasonSelf:
		return "Bit yourself"
	case core.ReasonFull:
		return "Board full"
	default:
		return "Round over"
	}
}
