package gesture

import "github.com/vovakirdan/gesnake/internal/core"

// DefaultThreshold is the fingertip offset from the wrist, in normalized image
// units, needed to register a gesture.
const DefaultThreshold = 0.1

// Classify maps the index fingertip position relative to the wrist onto a
// gesture. Vertical offsets win over horizontal ones. Horizontal results are
// swapped because the camera image is not mirrored: a tip left of the wrist in
// the image is the player's right.
func Classify(wrist, tip Point3D, threshold float64) core.Gesture {
	switch {
	case tip.Y < wrist.Y-threshold:
		return core.GestureUp
	case tip.Y > wrist.Y+threshold:
		return core.GestureDown
	case tip.X < wrist.X-threshold:
		return core.GestureRight
	case tip.X > wrist.X+threshold:
		return core.GestureLeft
	default:
		return core.GestureNone
	}
}

// ClassifyHand classifies a detected hand by its wrist and index fingertip.
func ClassifyHand(h *HandLandmarks, threshold float64) core.Gesture {
	if h == nil {
		return core.GestureNone
	}
	return Classify(h.Wrist(), h.IndexTip(), threshold)
}
