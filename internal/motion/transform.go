package motion

import (
	"time"

	"github.com/justyntemme/folderlike/internal/gallery"
)

// Transform animates all four layer channels under one shared spring.
type Transform struct {
	Spring Spring

	gridOffset, gridTilt, gridScale, detailOffset Value
}

// NewTransform starts at rest on t.
func NewTransform(s Spring, t gallery.Transform) *Transform {
	a := &Transform{Spring: s}
	a.Snap(t)
	return a
}

func (a *Transform) channels() [4]*Value {
	return [4]*Value{&a.gridOffset, &a.gridTilt, &a.gridScale, &a.detailOffset}
}

// Snap jumps to t with no motion.
func (a *Transform) Snap(t gallery.Transform) {
	for i, v := range a.channels() {
		target := targetOf(t, i)
		*v = Value{Pos: target, Target: target}
	}
}

// Retarget sets new targets while keeping the current position and velocity.
func (a *Transform) Retarget(t gallery.Transform) {
	for i, v := range a.channels() {
		v.Target = targetOf(t, i)
	}
}

// Step advances every channel by dt and reports whether anything still moves.
func (a *Transform) Step(dt time.Duration) bool {
	moving := false
	for _, v := range a.channels() {
		v.Step(a.Spring, dt)
		if !v.Settled() {
			moving = true
		}
	}
	return moving
}

// Settled reports whether every channel rests at its target.
func (a *Transform) Settled() bool {
	for _, v := range a.channels() {
		if !v.Settled() {
			return false
		}
	}
	return true
}

// Current returns the interpolated transform.
func (a *Transform) Current() gallery.Transform {
	return gallery.Transform{
		GridOffsetY:   float32(a.gridOffset.Pos),
		GridTiltDeg:   float32(a.gridTilt.Pos),
		GridScale:     float32(a.gridScale.Pos),
		DetailOffsetY: float32(a.detailOffset.Pos),
	}
}

func targetOf(t gallery.Transform, i int) float64 {
	switch i {
	case 0:
		return float64(t.GridOffsetY)
	case 1:
		return float64(t.GridTiltDeg)
	case 2:
		return float64(t.GridScale)
	default:
		return float64(t.DetailOffsetY)
	}
}

// Follow retargets like Retarget. While tracking a finger, the channels the
// drag drives (tilt and detail offset) jump straight to their targets so the
// card stays under the pointer; the rest keep springing.
func (a *Transform) Follow(t gallery.Transform, tracking bool) {
	a.Retarget(t)
	if !tracking {
		return
	}
	for _, v := range []*Value{&a.gridTilt, &a.detailOffset} {
		v.Pos = v.Target
		v.Vel = 0
	}
}
