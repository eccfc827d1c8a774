// Package motion interpolates the shelf's layer transforms with a damped
// spring so the host can draw intermediate frames between target values.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring describes a damped spring by its response (seconds for one
// undamped oscillation) and damping fraction.
type Spring struct {
	Response float64
	Damping  float64
}

// DefaultSpring settles in roughly half a second with a small overshoot.
var DefaultSpring = Spring{Response: 0.5, Damping: 0.6}

// angularFrequency converts the response period into radians per second.
func (s Spring) angularFrequency() float64 {
	if s.Response <= 0 {
		return 0
	}
	return 2 * math.Pi / s.Response
}

const (
	settleDistance = 0.01
	settleVelocity = 0.01
	// maxStep keeps a long stall (window hidden, debugger) from launching
	// the integrator.
	maxStep = 100 * time.Millisecond
)

// Value is one spring-driven channel.
type Value struct {
	Pos, Vel, Target float64
}

// Step advances the value by dt toward its target.
func (v *Value) Step(s Spring, dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > maxStep {
		dt = maxStep
	}
	if s.Response <= 0 {
		v.Pos, v.Vel = v.Target, 0
		return
	}
	sp := harmonica.NewSpring(dt.Seconds(), s.angularFrequency(), s.Damping)
	v.Pos, v.Vel = sp.Update(v.Pos, v.Vel, v.Target)
	if v.Settled() {
		v.Pos, v.Vel = v.Target, 0
	}
}

// Settled reports whether the value rests at its target.
func (v Value) Settled() bool {
	return math.Abs(v.Target-v.Pos) < settleDistance && math.Abs(v.Vel) < settleVelocity
}
