package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gesnake/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// rowText returns one screen row without colors.
func rowText(s *core.Screen, y int) string {
	var b strings.Builder
	for x := 0; x < s.Width(); x++ {
		b.WriteRune(s.GetCell(x, y).Rune)
	}
	return b.String()
}

// placeFruit moves the fruit somewhere the test controls.
func placeFruit(g *Game, p core.Point) {
	g.fruit = p
}

func TestResetLayout(t *testing.T) {
	g := newTestGame(1)

	want := []core.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
	body := g.Body()
	if len(body) != len(want) {
		t.Fatalf("Expected body length %d, got %d", len(want), len(body))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], want[i])
		}
	}
	if g.Direction() != core.DirRight {
		t.Errorf("Expected initial direction right, got %v", g.Direction())
	}
	if !g.Fruit().In(core.GridSize) {
		t.Errorf("Initial fruit %v is outside the grid", g.Fruit())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	gestures := map[int]core.Gesture{
		2:  core.GestureUp,
		5:  core.GestureRight,
		9:  core.GestureDown,
		12: core.GestureLeft,
	}
	for i := 0; i < 30; i++ {
		in := gestures[i]
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMoveKeepsLength(t *testing.T) {
	g := newTestGame(7)
	placeFruit(g, core.Point{X: 0, Y: 0})

	for i := 0; i < 5; i++ {
		before := len(g.Body())
		res := g.Step(core.GestureNone)
		if res.Ate {
			t.Fatalf("Unexpected fruit at tick %d", i)
		}
		if after := len(g.Body()); after != before {
			t.Errorf("tick %d: length changed from %d to %d without eating", i, before, after)
		}
	}

	if g.Head() != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Head = %v, expected (10, 10) after 5 moves right", g.Head())
	}
}

func TestEatingGrowsByOne(t *testing.T) {
	g := newTestGame(7)
	placeFruit(g, core.Point{X: 6, Y: 10})

	res := g.Step(core.GestureNone)

	if !res.Ate {
		t.Fatal("Expected fruit to be eaten")
	}
	if res.State.Length != 4 {
		t.Errorf("Length = %d, expected 4", res.State.Length)
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	// Tail stays where it was
	body := g.Body()
	if body[len(body)-1] != (core.Point{X: 3, Y: 10}) {
		t.Errorf("Tail = %v, expected (3, 10)", body[len(body)-1])
	}

	// Next move without fruit keeps the new length
	placeFruit(g, core.Point{X: 0, Y: 0})
	res = g.Step(core.GestureNone)
	if res.State.Length != 4 {
		t.Errorf("Length after following move = %d, expected 4", res.State.Length)
	}
}

func TestFruitRespawnNeverOnHead(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGame(seed)
		placeFruit(g, core.Point{X: 6, Y: 10})

		res := g.Step(core.GestureNone)
		if !res.Ate {
			t.Fatalf("seed %d: expected fruit to be eaten", seed)
		}
		if g.Fruit() == g.Head() {
			t.Errorf("seed %d: fruit respawned on head %v", seed, g.Head())
		}
		for _, seg := range g.Body() {
			if seg == g.Fruit() {
				t.Errorf("seed %d: fruit respawned on body at %v", seed, seg)
			}
		}
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name    string
		gesture core.Gesture
		moves   int
	}{
		{"right wall", core.GestureNone, 15},
		{"top wall", core.GestureUp, 12},
		{"bottom wall", core.GestureDown, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(3)
			placeFruit(g, core.Point{X: 0, Y: 0})

			// The first step moves right, then applies the gesture for later moves.
			var res core.StepResult
			for i := 0; i < tc.moves && !res.State.GameOver; i++ {
				res = g.Step(tc.gesture)
			}

			if !res.State.GameOver {
				t.Fatalf("Expected game over, head at %v", g.Head())
			}
			if res.State.Reason != core.ReasonWall {
				t.Errorf("Reason = %q, expected %q", res.State.Reason, core.ReasonWall)
			}
			if g.Head().In(core.GridSize) {
				t.Errorf("Head %v should be outside the grid", g.Head())
			}
		})
	}
}

func TestLeftWallCollision(t *testing.T) {
	g := newTestGame(3)
	placeFruit(g, core.Point{X: 19, Y: 19})

	// Turn around: right -> down -> left, then run into x = -1.
	g.Step(core.GestureDown)
	g.Step(core.GestureLeft)
	var res core.StepResult
	for i := 0; i < 10 && !res.State.GameOver; i++ {
		res = g.Step(core.GestureNone)
	}

	if res.State.Reason != core.ReasonWall {
		t.Errorf("Reason = %q, expected %q (head %v)", res.State.Reason, core.ReasonWall, g.Head())
	}
	if g.Head().X != -1 {
		t.Errorf("Head = %v, expected x = -1", g.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(5)
	// A body long enough to bite itself when turning in a tight square.
	g.body = []core.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}, {X: 2, Y: 10}, {X: 1, Y: 10}}
	g.rebuildOccupancy()
	placeFruit(g, core.Point{X: 19, Y: 19})

	g.Step(core.GestureDown) // -> (6,10), now heading down
	g.Step(core.GestureLeft) // -> (6,11), now heading left
	g.Step(core.GestureUp)   // -> (5,11), now heading up
	res := g.Step(core.GestureNone)

	if !res.State.GameOver {
		t.Fatalf("Expected game over, head at %v", g.Head())
	}
	if res.State.Reason != core.ReasonSelf {
		t.Errorf("Reason = %q, expected %q", res.State.Reason, core.ReasonSelf)
	}
}

func TestMovingIntoVacatedTail(t *testing.T) {
	g := newTestGame(5)
	// Square loop of four: head follows the tail into the cell it just left.
	g.body = []core.Point{{X: 5, Y: 10}, {X: 5, Y: 11}, {X: 6, Y: 11}, {X: 6, Y: 10}}
	g.rebuildOccupancy()
	g.direction = core.DirRight
	placeFruit(g, core.Point{X: 19, Y: 19})

	res := g.Step(core.GestureNone)
	if res.State.GameOver {
		t.Errorf("Moving into the cell the tail just left should be safe, got %q", res.State.Reason)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)
	placeFruit(g, core.Point{X: 0, Y: 0})

	if g.Direction() != core.DirRight {
		t.Fatalf("Expected initial direction Right, got %v", g.Direction())
	}

	// Try to go left (opposite) - should be ignored
	g.Step(core.GestureLeft)
	if g.Direction() != core.DirRight {
		t.Errorf("Should not allow reversal from Right to Left, got %v", g.Direction())
	}

	// Valid change
	g.Step(core.GestureDown)
	if g.Direction() != core.DirDown {
		t.Errorf("Expected direction Down, got %v", g.Direction())
	}

	// Reversal while heading down
	g.Step(core.GestureUp)
	if g.Direction() != core.DirDown {
		t.Errorf("Should not allow reversal from Down to Up, got %v", g.Direction())
	}
}

func TestGestureNoneKeepsDirection(t *testing.T) {
	g := newTestGame(42)
	placeFruit(g, core.Point{X: 0, Y: 0})

	g.Step(core.GestureUp)
	g.Step(core.GestureNone)
	if g.Direction() != core.DirUp {
		t.Errorf("GestureNone should keep the heading, got %v", g.Direction())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(42)
	placeFruit(g, core.Point{X: 0, Y: 0})

	g.TogglePause()
	before := g.Snapshot()
	g.Step(core.GestureUp)
	after := g.Snapshot()

	if after.HeadX != before.HeadX || after.Tick != before.Tick {
		t.Error("Paused game should not move")
	}
	if after.State != StatePaused {
		t.Errorf("State = %q, expected %q", after.State, StatePaused)
	}

	g.TogglePause()
	g.Step(core.GestureNone)
	if g.Head() == (core.Point{X: 5, Y: 10}) {
		t.Error("Resumed game should move")
	}
}

func TestSetPaused(t *testing.T) {
	g := newTestGame(42)

	g.SetPaused(true)
	g.SetPaused(true)
	if !g.State().Paused {
		t.Fatal("SetPaused(true) should pause")
	}
	g.SetPaused(false)
	if g.State().Paused {
		t.Error("SetPaused(false) should resume")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := newTestGame(1)
	placeFruit(g, core.Point{X: 0, Y: 0})
	for i := 0; i < 20; i++ {
		g.Step(core.GestureNone)
	}
	snap := g.Snapshot()
	if snap.State != StateGameOver {
		t.Fatalf("Expected game over, got %q", snap.State)
	}

	g.Step(core.GestureUp)
	g.TogglePause()
	if g.Snapshot() != snap {
		t.Error("Game over state should not change on further steps")
	}

	g.Reset(core.RuntimeConfig{Seed: 2})
	if g.State().GameOver {
		t.Error("Reset should start a fresh round")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	placeFruit(g, core.Point{X: 0, Y: 0})

	dst := core.NewScreen(core.GridSize*2, core.GridSize)
	g.Render(dst, 2)

	tests := []struct {
		name  string
		x, y  int
		color core.Color
	}{
		{"fruit", 0, 0, core.ColorFruit},
		{"fruit second column", 1, 0, core.ColorFruit},
		{"head", 10, 10, core.ColorSnakeHead},
		{"body", 8, 10, core.ColorSnake},
		{"tail", 7, 10, core.ColorSnake},
		{"field", 30, 5, core.ColorField},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dst.GetCell(tc.x, tc.y).Color; got != tc.color {
				t.Errorf("cell (%d, %d) color = %d, expected %d", tc.x, tc.y, got, tc.color)
			}
		})
	}
}

func TestRenderOverlay(t *testing.T) {
	g := newTestGame(1)
	if _, _, ok := g.OverlayLines(); ok {
		t.Error("Running game should have no overlay")
	}

	g.TogglePause()
	line1, _, ok := g.OverlayLines()
	if !ok || line1 != "Paused" {
		t.Errorf("OverlayLines() = %q, %v; expected Paused", line1, ok)
	}

	dst := core.NewScreen(40, 20)
	g.Render(dst, 2)
	g.RenderOverlay(dst)
	found := false
	for y := 0; y < dst.Height(); y++ {
		if strings.Contains(rowText(dst, y), "Paused") {
			found = true
		}
	}
	if !found {
		t.Error("Overlay text not drawn")
	}
}
