package motion

import (
	"math"
	"testing"
	"time"

	"github.com/justyntemme/folderlike/internal/gallery"
)

const frame = time.Second / 60

func TestValueConverges(t *testing.T) {
	v := Value{Pos: 0, Target: 100}
	overshoot := false
	for i := 0; i < 180; i++ {
		v.Step(DefaultSpring, frame)
		if v.Pos > 100 {
			overshoot = true
		}
	}
	if !v.Settled() {
		t.Errorf("after 3s: expected settled, got pos=%v vel=%v", v.Pos, v.Vel)
	}
	if v.Pos != 100 {
		t.Errorf("settled value should snap to target, got %v", v.Pos)
	}
	if !overshoot {
		t.Error("damping 0.6 should overshoot the target")
	}
}

func TestValueStepEdgeCases(t *testing.T) {
	v := Value{Pos: 1, Target: 5}
	v.Step(DefaultSpring, 0)
	if v.Pos != 1 {
		t.Errorf("zero dt should not move, got %v", v.Pos)
	}

	v.Step(Spring{}, frame)
	if v.Pos != 5 || v.Vel != 0 {
		t.Errorf("zero response should jump to target, got pos=%v vel=%v", v.Pos, v.Vel)
	}

	// A long stall is clamped and must not blow up.
	w := Value{Pos: 0, Target: 10}
	w.Step(DefaultSpring, 10*time.Second)
	if math.IsNaN(w.Pos) || math.Abs(w.Pos) > 100 {
		t.Errorf("clamped step produced %v", w.Pos)
	}
}

func TestTransformAnimatesToTarget(t *testing.T) {
	collapsed := gallery.Render(gallery.State{}, 800)
	expanded := gallery.Render(gallery.State{Expanded: true}, 800)

	a := NewTransform(DefaultSpring, collapsed)
	if !a.Settled() || a.Current() != collapsed {
		t.Fatalf("NewTransform should rest at start, got %+v", a.Current())
	}

	a.Retarget(expanded)
	if !a.Step(frame) {
		t.Fatal("Step right after Retarget should report motion")
	}
	mid := a.Current()
	if mid.GridOffsetY >= 0 || mid.GridOffsetY <= -450 {
		t.Errorf("first frame grid offset should be between 0 and -450, got %v", mid.GridOffsetY)
	}

	for i := 0; i < 240 && a.Step(frame); i++ {
	}
	if got := a.Current(); got != expanded {
		t.Errorf("after settling: expected %+v, got %+v", expanded, got)
	}
}

func TestSnap(t *testing.T) {
	a := NewTransform(DefaultSpring, gallery.Transform{GridScale: 1})
	target := gallery.Transform{GridOffsetY: -450, GridScale: 0.9, GridTiltDeg: -10}
	a.Snap(target)
	if a.Current() != target || !a.Settled() {
		t.Errorf("Snap: expected %+v at rest, got %+v", target, a.Current())
	}
}

func TestFollowTracksDrag(t *testing.T) {
	expanded := gallery.Transform{GridOffsetY: -450, GridTiltDeg: -10, GridScale: 0.9}
	a := NewTransform(DefaultSpring, expanded)

	dragged := expanded
	dragged.GridTiltDeg = -7
	dragged.DetailOffsetY = 30
	dragged.GridOffsetY = -400

	a.Follow(dragged, true)
	got := a.Current()
	if got.GridTiltDeg != -7 || got.DetailOffsetY != 30 {
		t.Errorf("tracking channels should jump, got tilt=%v detail=%v", got.GridTiltDeg, got.DetailOffsetY)
	}
	if got.GridOffsetY != -450 {
		t.Errorf("grid offset should still spring from -450, got %v", got.GridOffsetY)
	}

	a.Follow(expanded, false)
	if got := a.Current(); got.DetailOffsetY != 30 {
		t.Errorf("without tracking detail offset should animate back, got %v", got.DetailOffsetY)
	}
	if a.Settled() {
		t.Error("release should leave the transform in motion")
	}
}
