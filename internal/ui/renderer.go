package ui

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/folderlike/internal/assets"
	"github.com/justyntemme/folderlike/internal/config"
	"github.com/justyntemme/folderlike/internal/debug"
)

// Renderer draws the shelf and turns input into UIEvents. It keeps widget
// state only; everything it draws comes from State.
type Renderer struct {
	Theme  *material.Theme
	Covers *assets.Cache

	// Grid column sizing, in dp
	GridMinColumn int
	GridMaxColumn int
	GridSpacing   int

	gridList    layout.List
	gridColumns int

	detailGesture DragTap
	buyBtn        widget.Clickable

	hotkeys *config.HotkeyMatcher
	toast   toast
}

func NewRenderer() *Renderer {
	r := &Renderer{
		Theme:         material.NewTheme(),
		GridMinColumn: 150,
		GridMaxColumn: 170,
		GridSpacing:   20,
		gridColumns:   1,
	}
	r.gridList.Axis = layout.Vertical
	return r
}

// SetHotkeys installs the keyboard shortcuts.
func (r *Renderer) SetHotkeys(m *config.HotkeyMatcher) {
	r.hotkeys = m
}

// DragActive reports whether the detail card is being dragged.
func (r *Renderer) DragActive() bool {
	return r.detailGesture.Dragging()
}

// Layout draws one frame and returns what the user asked for during it.
func (r *Renderer) Layout(gtx layout.Context, state *State) UIEvent {
	var evt UIEvent
	r.processGlobalInput(gtx, state, &evt)

	size := gtx.Constraints.Max
	paint.Fill(gtx.Ops, colScreen)

	t := state.Transform
	debug.Log(debug.UI_LAYOUT, "transform %+v", t)

	// Grid layer: scaled about its center, squashed vertically to suggest
	// the tilt, then lifted.
	center := f32.Pt(float32(size.X)/2, float32(size.Y)/2)
	tilt := math.Cos(float64(t.TiltRadians()))
	grid := f32.Affine2D{}.
		Scale(center, f32.Pt(t.GridScale, t.GridScale*float32(tilt))).
		Offset(f32.Pt(0, t.GridOffsetY*gtx.Metric.PxPerDp))
	stack := op.Affine(grid).Push(gtx.Ops)
	ggtx := gtx
	ggtx.Constraints = layout.Exact(size)
	r.layoutGrid(ggtx, state, &evt)
	stack.Pop()

	r.layoutDetail(gtx, state, &evt)
	r.layoutToast(gtx)

	return evt
}

// ScreenHeightDp is the exact frame height in dp. The collapsed detail layer
// rests at this offset, so it must not be rounded.
func ScreenHeightDp(gtx layout.Context) float32 {
	px := gtx.Metric.PxPerDp
	if px == 0 {
		px = 1
	}
	return float32(gtx.Constraints.Max.Y) / px
}

// ScreenDp is the frame size in whole dp, for persisting the window size.
func ScreenDp(gtx layout.Context) image.Point {
	px := gtx.Metric.PxPerDp
	if px == 0 {
		px = 1
	}
	return image.Pt(int(float32(gtx.Constraints.Max.X)/px), int(float32(gtx.Constraints.Max.Y)/px))
}
