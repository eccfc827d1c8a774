package ui

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

var areaSize = image.Pt(400, 800)

// frameAt registers d at origin and hands the ops to the router, the way
// layoutDetail does when the card follows the pointer.
func frameAt(r *input.Router, d *DragTap, origin f32.Point) layout.Context {
	ops := new(op.Ops)
	gtx := layout.Context{
		Ops:         ops,
		Source:      r.Source(),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(areaSize),
	}
	stack := op.Offset(origin.Round()).Push(ops)
	d.Add(gtx, origin, areaSize)
	stack.Pop()
	r.Frame(ops)
	return gtx
}

func mouse(kind pointer.Kind, y float32, buttons pointer.Buttons) pointer.Event {
	return pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Buttons:  buttons,
		Position: f32.Pt(20, y),
	}
}

func TestDragTapFollowingDrag(t *testing.T) {
	var r input.Router
	var d DragTap
	// Declare the gesture's filters before the first frame.
	d.Update(layout.Context{Source: r.Source()})
	gtx := frameAt(&r, &d, f32.Point{})

	r.Queue(mouse(pointer.Press, 100, pointer.ButtonPrimary))
	if ev := d.Update(gtx); ev.Kind != GestureNone {
		t.Fatalf("press: expected no event, got %+v", ev)
	}

	r.Queue(mouse(pointer.Drag, 140, pointer.ButtonPrimary))
	ev := d.Update(gtx)
	if ev.Kind != GestureDragChanged || ev.Translation != f32.Pt(0, 40) {
		t.Errorf("first move: expected DragChanged (0,40), got %+v", ev)
	}
	if !d.Dragging() {
		t.Error("Dragging() should be true after a move")
	}

	// The area follows the finger; translations stay in screen space.
	gtx = frameAt(&r, &d, f32.Pt(0, 40))
	r.Queue(mouse(pointer.Drag, 180, pointer.ButtonPrimary))
	ev = d.Update(gtx)
	if ev.Kind != GestureDragChanged || ev.Translation != f32.Pt(0, 80) {
		t.Errorf("second move: expected DragChanged (0,80), got %+v", ev)
	}

	gtx = frameAt(&r, &d, f32.Pt(0, 80))
	r.Queue(mouse(pointer.Release, 180, pointer.ButtonPrimary))
	ev = d.Update(gtx)
	if ev.Kind != GestureDragEnded || ev.Translation != f32.Pt(0, 80) {
		t.Errorf("release: expected DragEnded (0,80), got %+v", ev)
	}
	if d.Dragging() {
		t.Error("Dragging() should be false after release")
	}

	if ev := d.Update(gtx); ev.Kind != GestureNone {
		t.Errorf("after release: expected no further event, got %+v", ev)
	}
}

func TestDragTapWholeDragInOneFrame(t *testing.T) {
	var r input.Router
	var d DragTap
	d.Update(layout.Context{Source: r.Source()})
	gtx := frameAt(&r, &d, f32.Point{})

	r.Queue(
		mouse(pointer.Press, 100, pointer.ButtonPrimary),
		mouse(pointer.Drag, 130, pointer.ButtonPrimary),
		mouse(pointer.Drag, 160, pointer.ButtonPrimary),
		mouse(pointer.Release, 160, pointer.ButtonPrimary),
	)
	ev := d.Update(gtx)
	if ev.Kind != GestureDragEnded || ev.Translation != f32.Pt(0, 60) {
		t.Errorf("expected a single DragEnded (0,60), got %+v", ev)
	}
	if ev := d.Update(gtx); ev.Kind != GestureNone {
		t.Errorf("expected nothing after the drag ended, got %+v", ev)
	}
}

func TestDragTapTap(t *testing.T) {
	var r input.Router
	var d DragTap
	d.Update(layout.Context{Source: r.Source()})
	gtx := frameAt(&r, &d, f32.Point{})

	r.Queue(
		mouse(pointer.Press, 100, pointer.ButtonPrimary),
		mouse(pointer.Release, 100, pointer.ButtonPrimary),
	)
	if ev := d.Update(gtx); ev.Kind != GestureTap {
		t.Errorf("press and release: expected a tap, got %+v", ev)
	}
	if ev := d.Update(gtx); ev.Kind != GestureNone {
		t.Errorf("expected a single tap, got another %+v", ev)
	}
}

func TestDetailEvent(t *testing.T) {
	testCases := []struct {
		name    string
		prior   UIEvent
		ge      GestureEvent
		buy     bool
		pxPerDp float32
		want    UIEvent
	}{
		{"drag changed in dp", UIEvent{}, GestureEvent{Kind: GestureDragChanged, Translation: f32.Pt(0, 160)}, false, 2,
			UIEvent{Action: ActionDragChanged, Translation: f32.Pt(0, 80)}},
		{"drag ended in dp", UIEvent{}, GestureEvent{Kind: GestureDragEnded, Translation: f32.Pt(10, 210)}, false, 2.5,
			UIEvent{Action: ActionDragEnded, Translation: f32.Pt(4, 84)}},
		{"drag ended beats a key", UIEvent{Action: ActionCollapse}, GestureEvent{Kind: GestureDragEnded, Translation: f32.Pt(0, 60)}, false, 1,
			UIEvent{Action: ActionDragEnded, Translation: f32.Pt(0, 60)}},
		{"drag changed yields to a key", UIEvent{Action: ActionCollapse}, GestureEvent{Kind: GestureDragChanged, Translation: f32.Pt(0, 60)}, false, 1,
			UIEvent{Action: ActionCollapse}},
		{"tap toggles", UIEvent{}, GestureEvent{Kind: GestureTap}, false, 1,
			UIEvent{Action: ActionToggle}},
		{"buy click suppresses the tap", UIEvent{}, GestureEvent{Kind: GestureTap}, true, 1,
			UIEvent{Action: ActionBuy, BookID: "thirst"}},
		{"zero metric", UIEvent{}, GestureEvent{Kind: GestureDragChanged, Translation: f32.Pt(0, 30)}, false, 0,
			UIEvent{Action: ActionDragChanged, Translation: f32.Pt(0, 30)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.prior
			detailEvent(tc.ge, tc.buy, tc.pxPerDp, "thirst", &got)
			if got != tc.want {
				t.Errorf("detailEvent: expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestDetailHiddenWhenCollapsed(t *testing.T) {
	testCases := []struct {
		heightPx int
		pxPerDp  float32
	}{
		{1001, 2},
		{1688, 2.625},
		{844, 1},
		{2533, 3},
	}
	for _, tc := range testCases {
		gtx := layout.Context{
			Metric:      unit.Metric{PxPerDp: tc.pxPerDp},
			Constraints: layout.Exact(image.Pt(400, tc.heightPx)),
		}
		offset := ScreenHeightDp(gtx)
		if !detailHidden(offset, tc.pxPerDp, tc.heightPx) {
			t.Errorf("%dpx at %v: collapsed detail at %vdp should be off screen", tc.heightPx, tc.pxPerDp, offset)
		}
		if detailHidden(offset-1, tc.pxPerDp, tc.heightPx) {
			t.Errorf("%dpx at %v: detail 1dp above the bottom should be visible", tc.heightPx, tc.pxPerDp)
		}
	}
}
