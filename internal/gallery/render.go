package gallery

import "math"

const (
	expandedGridOffset = -450
	expandedGridScale  = 0.9
	tiltBase           = -10 // degrees
	tiltDivisor        = 10  // units of vertical drag per degree
)

// Transform holds the target values the host animates toward.
type Transform struct {
	GridOffsetY   float32 // vertical translation of the grid layer
	GridTiltDeg   float32 // rotation of the grid layer about the horizontal axis
	GridScale     float32
	DetailOffsetY float32 // vertical translation of the detail layer
}

// Render derives the layer transforms from the selection state. screenHeight
// is where the detail layer rests while collapsed.
func Render(s State, screenHeight float32) Transform {
	if !s.Expanded {
		return Transform{
			GridScale:     1,
			DetailOffsetY: screenHeight + s.DragOffset.Y,
		}
	}
	return Transform{
		GridOffsetY:   expandedGridOffset,
		GridTiltDeg:   s.DragOffset.Y/tiltDivisor + tiltBase,
		GridScale:     expandedGridScale,
		DetailOffsetY: s.DragOffset.Y,
	}
}

// TiltRadians returns GridTiltDeg in radians.
func (t Transform) TiltRadians() float32 {
	return t.GridTiltDeg * math.Pi / 180
}
