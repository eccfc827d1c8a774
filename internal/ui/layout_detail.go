package ui

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/justyntemme/folderlike/internal/debug"
	"github.com/justyntemme/folderlike/internal/shape"
)

// layoutDetail draws the detail layer: a full-screen, nearly invisible
// touch surface with the selected book's card pinned to the bottom. The
// whole layer is shifted down by Transform.DetailOffsetY.
func (r *Renderer) layoutDetail(gtx layout.Context, state *State, eventOut *UIEvent) {
	size := gtx.Constraints.Max
	pxPerDp := gtx.Metric.PxPerDp

	ge := r.detailGesture.Update(gtx)
	buy := r.buyBtn.Clicked(gtx)

	detailEvent(ge, buy, pxPerDp, state.Selected.ID, eventOut)
	if eventOut.Action != ActionNone {
		debug.Log(debug.UI, "detail: %s %v", eventOut.Action, eventOut.Translation)
	}

	if detailHidden(state.Transform.DetailOffsetY, pxPerDp, size.Y) && !r.detailGesture.Dragging() {
		return
	}
	offY := int(math.Round(float64(state.Transform.DetailOffsetY * pxPerDp)))

	defer op.Offset(image.Pt(0, offY)).Push(gtx.Ops).Pop()
	r.detailGesture.Add(gtx, f32.Pt(0, float32(offY)), size)

	cardH := gtx.Dp(360)
	margin := gtx.Dp(30)
	card := image.Rect(margin, size.Y-cardH, size.X-margin, size.Y)
	if card.Min.Y < 0 {
		card.Min.Y = 0
	}
	if card.Dx() <= 0 {
		return
	}

	defer op.Offset(card.Min).Push(gtx.Ops).Pop()
	cardSize := card.Size()
	radius := gtx.Dp(shape.DefaultCornerRadius)

	shadow := clip.UniformRRect(image.Rectangle{Min: image.Pt(0, gtx.Dp(20)), Max: cardSize.Add(image.Pt(0, gtx.Dp(20)))}, radius)
	paint.FillShape(gtx.Ops, colShadow, shadow.Op(gtx.Ops))

	defer clip.UniformRRect(image.Rectangle{Max: cardSize}, radius).Push(gtx.Ops).Pop()
	cgtx := gtx
	cgtx.Constraints = layout.Exact(cardSize)
	r.layoutCover(cgtx, state.Selected.ImageRef)

	layout.S.Layout(cgtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				paint.FillShape(gtx.Ops, colPanel, clip.Rect{Max: gtx.Constraints.Min}.Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return r.layoutDetailText(gtx, state)
				})
			}),
		)
	})
}

// detailEvent folds this frame's detail gesture and buy click into eventOut.
// Gesture translations arrive in pixels and leave in dp.
func detailEvent(ge GestureEvent, buy bool, pxPerDp float32, selectedID string, eventOut *UIEvent) {
	if pxPerDp == 0 {
		pxPerDp = 1
	}
	switch ge.Kind {
	case GestureDragEnded:
		// A lost release would leave the drag offset stuck, so it wins.
		*eventOut = UIEvent{Action: ActionDragEnded, Translation: ge.Translation.Div(pxPerDp)}
	case GestureDragChanged:
		if eventOut.Action == ActionNone {
			*eventOut = UIEvent{Action: ActionDragChanged, Translation: ge.Translation.Div(pxPerDp)}
		}
	case GestureTap:
		if eventOut.Action == ActionNone && !buy {
			*eventOut = UIEvent{Action: ActionToggle}
		}
	}
	if buy && eventOut.Action == ActionNone {
		*eventOut = UIEvent{Action: ActionBuy, BookID: selectedID}
	}
}

// detailHidden reports whether a detail layer shifted down by offsetDp lies
// entirely below a frame height px tall. Half a pixel of slack absorbs the
// float error of converting the collapsed offset back to pixels.
func detailHidden(offsetDp, pxPerDp float32, height int) bool {
	return offsetDp*pxPerDp >= float32(height)-0.5
}

func (r *Renderer) layoutDetailText(gtx layout.Context, state *State) layout.Dimensions {
	b := state.Selected
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			lbl := material.Label(r.Theme, unit.Sp(18), b.Title)
			lbl.Font.Weight = font.Medium
			lbl.Color = colWhite
			return lbl.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			lbl := material.Label(r.Theme, unit.Sp(14), b.Author)
			lbl.Color = colWhite
			return lbl.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			btn := material.Button(r.Theme, &r.buyBtn, "Buy it for "+b.Price.Dollars())
			btn.Background = colBuyBtn
			btn.Color = colWhite
			btn.TextSize = unit.Sp(18)
			btn.Font.Weight = font.Bold
			btn.CornerRadius = unit.Dp(shape.DefaultCornerRadius)
			btn.Inset = layout.UniformInset(unit.Dp(16))
			return btn.Layout(gtx)
		}),
	)
}
