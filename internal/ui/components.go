package ui

import (
	"image"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/folderlike/internal/shape"
)

// layoutFolderCard draws one grid card: a skewed back card peeking out
// behind a rounded cover with the title and author over a dark scrim.
func (r *Renderer) layoutFolderCard(gtx layout.Context, item *BookItem, focused bool) layout.Dimensions {
	size := gtx.Constraints.Max
	coverH := gtx.Dp(220)
	radius := gtx.Dp(shape.DefaultCornerRadius)

	return item.click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		// Back card, inset on the trailing edge.
		back := shape.Outline(
			shape.Size{W: float32(size.X - gtx.Dp(20)), H: float32(size.Y)},
			float32(gtx.Dp(30)), true, float32(radius),
		)
		paint.FillShape(gtx.Ops, colBackCard, back.Op(gtx.Ops))

		// Cover
		coverRect := image.Rectangle{Max: image.Pt(size.X, coverH)}
		cl := clip.UniformRRect(coverRect, radius).Push(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(coverRect.Max)
		r.layoutCover(cgtx, item.Book.ImageRef)

		// Scrim fades in over the lower part of the cover.
		paint.LinearGradientOp{
			Stop1:  f32.Pt(0, float32(coverH)*0.55),
			Color1: transparent(colScrim),
			Stop2:  f32.Pt(0, float32(coverH)),
			Color2: colScrim,
		}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)

		layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Bottom: unit.Dp(10)}.Layout(cgtx, func(gtx layout.Context) layout.Dimensions {
			return layout.S.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						lbl := material.Label(r.Theme, unit.Sp(14), item.Book.Title)
						lbl.Font.Weight = font.SemiBold
						lbl.Color = colWhite
						return lbl.Layout(gtx)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						lbl := material.Label(r.Theme, unit.Sp(12), item.Book.Author)
						lbl.Color = colWhite
						return lbl.Layout(gtx)
					}),
				)
			})
		})
		cl.Pop()

		if focused {
			widget.Border{Color: colFocus, Width: unit.Dp(2), CornerRadius: unit.Dp(shape.DefaultCornerRadius)}.Layout(cgtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			})
		}

		return layout.Dimensions{Size: size}
	})
}

// layoutCover fills the constraints with the cover for ref, or a flat
// placeholder while it loads.
func (r *Renderer) layoutCover(gtx layout.Context, ref string) layout.Dimensions {
	size := gtx.Constraints.Max
	if r.Covers != nil {
		if img, _, ok := r.Covers.Get(ref); ok {
			return widget.Image{
				Src:      img,
				Fit:      widget.Cover,
				Position: layout.Center,
			}.Layout(gtx)
		}
		r.Covers.RequestLoad(ref)
	}
	paint.FillShape(gtx.Ops, colCoverEmpty, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}
