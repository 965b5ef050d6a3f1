package core

// Color tags a screen cell with a palette entry.
// Frontends decide how each entry is actually drawn.
type Color uint8

const (
	ColorDefault Color = iota
	ColorField
	ColorSnake
	ColorSnakeHead
	ColorFruit
	ColorText
	ColorOverlay
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Palette maps colors to RGB values. The field, snake and fruit colors are
// the ones the game has always been drawn with.
var Palette = map[Color]RGB{
	ColorDefault:   {R: 0, G: 0, B: 0},
	ColorField:     {R: 175, G: 215, B: 70},
	ColorSnake:     {R: 170, G: 140, B: 15},
	ColorSnakeHead: {R: 140, G: 110, B: 5},
	ColorFruit:     {R: 126, G: 164, B: 114},
	ColorText:      {R: 40, G: 50, B: 20},
	ColorOverlay:   {R: 250, G: 250, B: 235},
}

// RGBOf returns the palette entry for c, falling back to ColorDefault.
func RGBOf(c Color) RGB {
	if rgb, ok := Palette[c]; ok {
		return rgb
	}
	return Palette[ColorDefault]
}
