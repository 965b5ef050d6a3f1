package gesture

import (
	"fmt"
	"math"
)

// NormalizePixels converts packed 8-bit RGB pixels into float32 values in
// [0, 1], keeping the interleaved (NHWC) layout. dst must be at least as long
// as pix.
func NormalizePixels(dst []float32, pix []byte) error {
	if len(dst) < len(pix) {
		return fmt.Errorf("gesture: tensor holds %d values, frame has %d", len(dst), len(pix))
	}
	for i, v := range pix {
		dst[i] = float32(v) / 255
	}
	return nil
}

// DecodeLandmarks reads NumLandmarks x/y/z triples from a landmark model output
// expressed in input pixels and normalizes x and y by the input size.
func DecodeLandmarks(raw []float32, inputSize int) (HandLandmarks, error) {
	var h HandLandmarks
	if len(raw) < NumLandmarks*3 {
		return h, fmt.Errorf("gesture: landmark tensor has %d values, need %d", len(raw), NumLandmarks*3)
	}
	if inputSize <= 0 {
		return h, fmt.Errorf("gesture: invalid input size %d", inputSize)
	}

	size := float64(inputSize)
	for i := range NumLandmarks {
		h.Points[i] = Point3D{
			X: float64(raw[i*3]) / size,
			Y: float64(raw[i*3+1]) / size,
			Z: float64(raw[i*3+2]) / size,
		}
	}
	return h, nil
}

// Sigmoid maps a logit onto (0, 1).
func Sigmoid(x float32) float64 {
	return 1 / (1 + math.Exp(-float64(x)))
}

// HandednessLabel turns a right-hand probability into a label.
func HandednessLabel(p float64) string {
	if p >= 0.5 {
		return "Right"
	}
	return "Left"
}
