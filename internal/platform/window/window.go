// Package window is the desktop frontend: an Ebitengine window sized to the
// grid, redrawn at the frame rate.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gesnake/internal/app"
	"github.com/vovakirdan/gesnake/internal/core"
	"github.com/vovakirdan/gesnake/internal/registry"
)

// Debug font metrics used to center overlay text.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

func init() {
	registry.Register("window", func(cellSize int) app.Frontend {
		return New(cellSize)
	})
}

// Frontend opens a window of GridSize x cellSize pixels.
type Frontend struct {
	cellSize int
}

// New creates a window frontend.
func New(cellSize int) *Frontend {
	if cellSize <= 0 {
		cellSize = 40
	}
	return &Frontend{cellSize: cellSize}
}

// ID implements app.Frontend.
func (f *Frontend) ID() string { return "window" }

// Title implements app.Frontend.
func (f *Frontend) Title() string { return "Window (Ebitengine)" }

// Run implements app.Frontend. Ebitengine must own the main thread, so Run
// has to be called from the main goroutine.
func (f *Frontend) Run(ctx context.Context, s *app.Session) error {
	cfg := core.DefaultConfig()
	side := core.GridSize * f.cellSize

	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(cfg.FrameRate)

	err := ebiten.RunGame(&game{
		session:  s,
		cellSize: f.cellSize,
		clock:    core.NewTickClock(cfg.FrameRate, cfg.TickInterval),
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// game implements ebiten.Game.
type game struct {
	session  *app.Session
	cellSize int
	clock    *core.TickClock
}

func (g *game) Update() error {
	select {
	case <-g.session.Done():
		return ebiten.Termination
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.session.Stop()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if g.session.Restart() {
			g.clock.Reset()
		}
	}

	for range g.clock.Advance() {
		g.session.Tick()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	v := g.session.View()

	screen.Fill(rgba(core.ColorField))
	g.drawCell(screen, v.Fruit, rgba(core.ColorFruit))
	for i := len(v.Body) - 1; i >= 0; i-- {
		c := rgba(core.ColorSnake)
		if i == 0 {
			c = rgba(core.ColorSnakeHead)
		}
		g.drawCell(screen, v.Body[i], c)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score %d  Best %d  Hand %s", v.State.Score, v.Best, v.Gesture), 4, 2)

	if v.HasMessage() {
		g.drawOverlay(screen, v.Message[0], v.Message[1])
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := core.GridSize * g.cellSize
	return side, side
}

func (g *game) drawCell(screen *ebiten.Image, p core.Point, c color.RGBA) {
	if !p.In(core.GridSize) {
		return
	}
	s := float32(g.cellSize)
	vector.DrawFilledRect(screen, float32(p.X)*s, float32(p.Y)*s, s, s, c, false)
}

func (g *game) drawOverlay(screen *ebiten.Image, line1, line2 string) {
	side := core.GridSize * g.cellSize
	boxW := (max(len(line1), len(line2)) + 4) * glyphWidth
	boxH := glyphHeight * 3
	x := (side - boxW) / 2
	y := (side - boxH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), rgba(core.ColorText), false)
	ebitenutil.DebugPrintAt(screen, line1, (side-len(line1)*glyphWidth)/2, y+glyphHeight/2)
	ebitenutil.DebugPrintAt(screen, line2, (side-len(line2)*glyphWidth)/2, y+glyphHeight*3/2)
}

func rgba(c core.Color) color.RGBA {
	rgb := core.RGBOf(c)
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
}
