package vision

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/vovakirdan/gesnake/internal/core"
	"github.com/vovakirdan/gesnake/internal/gesture"
)

var (
	landmarkColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	keyPointColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	labelColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Preview is the debug window showing the mirrored camera feed.
type Preview struct {
	window   *gocv.Window
	mirrored gocv.Mat
}

// NewPreview opens a window with the given title.
func NewPreview(title string) *Preview {
	return &Preview{
		window:   gocv.NewWindow(title),
		mirrored: gocv.NewMat(),
	}
}

// Show draws the frame flipped horizontally with the hand landmarks and the
// gesture label, then pumps window events. It reports whether 'q' was pressed.
func (p *Preview) Show(frame *gocv.Mat, hand *gesture.HandLandmarks, g core.Gesture) bool {
	gocv.Flip(*frame, &p.mirrored, 1)

	cols, rows := p.mirrored.Cols(), p.mirrored.Rows()
	if hand != nil {
		for i, pt := range hand.Points {
			c := landmarkColor
			if i == gesture.Wrist || i == gesture.IndexTip {
				c = keyPointColor
			}
			center := image.Pt(int((1-pt.X)*float64(cols)), int(pt.Y*float64(rows)))
			gocv.Circle(&p.mirrored, center, 2, c, -1)
		}
	}
	gocv.PutText(&p.mirrored, g.String(), image.Pt(4, 12), gocv.FontHersheyPlain, 0.8, labelColor, 1)

	p.window.IMShow(p.mirrored)
	return p.window.WaitKey(1)&0xFF == 'q'
}

// Close destroys the window.
func (p *Preview) Close() error {
	p.mirrored.Close()
	return p.window.Close()
}
