package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gesnake/internal/core"
)

// hexColor converts a palette entry to a lipgloss true-color value.
func hexColor(rgb core.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

// colorStyles maps core.Color to lipgloss styles. Grid cells are painted as
// background blocks; text colors pair with the cell they sit on.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorField:     lipgloss.NewStyle().Background(hexColor(core.RGBOf(core.ColorField))),
	core.ColorSnake:     lipgloss.NewStyle().Background(hexColor(core.RGBOf(core.ColorSnake))),
	core.ColorSnakeHead: lipgloss.NewStyle().Background(hexColor(core.RGBOf(core.ColorSnakeHead))),
	core.ColorFruit:     lipgloss.NewStyle().Background(hexColor(core.RGBOf(core.ColorFruit))),
	core.ColorText:      lipgloss.NewStyle().Foreground(hexColor(core.RGBOf(core.ColorText))),
	core.ColorOverlay: lipgloss.NewStyle().
		Background(hexColor(core.RGBOf(core.ColorOverlay))).
		Foreground(hexColor(core.RGBOf(core.ColorText))).
		Bold(true),
}

var (
	hudStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudLine formats the status line above the field.
func hudLine(score, length, best int, g core.Gesture) string {
	return hudStyle.Render(fmt.Sprintf("Score %d  Length %d  Best %d  Hand %s", score, length, best, g))
}
