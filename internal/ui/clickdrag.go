package ui

import (
	"image"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// GestureKind is what a DragTap reported for a frame.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureTap
	GestureDragChanged
	GestureDragEnded
)

// GestureEvent carries a tap or drag report. Translation is in pixels,
// measured from the press position.
type GestureEvent struct {
	Kind        GestureKind
	Translation f32.Point
}

// DragTap handles both tap and drag on the same area, like a view with a tap
// handler and a drag gesture attached.
//
// gesture.Drag only starts reporting after the pointer passes the touch
// slop, so a press and release without movement is a tap. A release that
// ends a drag never counts as a tap.
//
// The area may move between frames (the detail card follows the finger), so
// positions are converted to screen space with the origin the area was
// registered at. Otherwise the translation would shrink as the area chases
// the pointer.
type DragTap struct {
	click gesture.Click
	drag  gesture.Drag

	origin f32.Point // where the area was registered last frame
	start  f32.Point // press position in screen space
	last   f32.Point // latest translation
	pid    pointer.ID

	dragging bool
	wasDrag  bool // the current press turned into a drag
}

// Dragging reports whether a drag is in progress.
func (d *DragTap) Dragging() bool {
	return d.dragging
}

// Update processes pending pointer events. When a drag ends in the same
// frame it changed, the end wins; the controller gets the final translation
// either way.
func (d *DragTap) Update(gtx layout.Context) GestureEvent {
	var out GestureEvent

	for {
		e, ok := d.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		pos := e.Position.Add(d.origin)
		switch e.Kind {
		case pointer.Press:
			d.start = pos
			d.last = f32.Point{}
			d.pid = e.PointerID
			d.dragging = false
			d.wasDrag = false
		case pointer.Drag:
			if e.PointerID != d.pid {
				continue
			}
			d.dragging = true
			d.wasDrag = true
			d.last = pos.Sub(d.start)
			out = GestureEvent{Kind: GestureDragChanged, Translation: d.last}
		case pointer.Release, pointer.Cancel:
			if d.dragging {
				if e.Kind == pointer.Release {
					d.last = pos.Sub(d.start)
				}
				out = GestureEvent{Kind: GestureDragEnded, Translation: d.last}
			}
			d.dragging = false
		}
	}

	for {
		e, ok := d.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindClick && !d.wasDrag && out.Kind == GestureNone {
			out = GestureEvent{Kind: GestureTap}
		}
	}

	return out
}

// Add registers the hit area of the given size at the current transform.
// origin is the screen-space position of that transform.
func (d *DragTap) Add(gtx layout.Context, origin f32.Point, size image.Point) {
	d.origin = origin
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	d.click.Add(gtx.Ops)
	d.drag.Add(gtx.Ops)
}
