package ui

import (
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// gridColumns fits as many columns of at least minCol as avail allows,
// then widens them evenly up to maxCol. Sizes are in pixels.
func gridColumns(avail, minCol, maxCol, spacing int) (cols, width int) {
	if minCol <= 0 {
		minCol = 1
	}
	cols = (avail + spacing) / (minCol + spacing)
	if cols < 1 {
		cols = 1
	}
	width = (avail - spacing*(cols-1)) / cols
	if maxCol > 0 && width > maxCol {
		width = maxCol
	}
	if width < 1 {
		width = 1
	}
	return cols, width
}

// layoutGrid draws the "My Books" page: a title row followed by rows of
// folder cards. It reports the first card tapped this frame.
func (r *Renderer) layoutGrid(gtx layout.Context, state *State, eventOut *UIEvent) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, colBackground, clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(30)).Op(gtx.Ops))

	pad := gtx.Dp(20)
	spacing := gtx.Dp(unit.Dp(r.GridSpacing))
	cols, colWidth := gridColumns(size.X-2*pad, gtx.Dp(unit.Dp(r.GridMinColumn)), gtx.Dp(unit.Dp(r.GridMaxColumn)), spacing)
	r.gridColumns = cols

	n := len(state.Items)
	rows := (n + cols - 1) / cols

	for i := range state.Items {
		if state.Items[i].click.Clicked(gtx) && eventOut.Action == ActionNone {
			*eventOut = UIEvent{Action: ActionSelect, BookID: state.Items[i].Book.ID}
		}
	}

	defer clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(30)).Push(gtx.Ops).Pop()
	return r.gridList.Layout(gtx, rows+1, func(gtx layout.Context, row int) layout.Dimensions {
		if row == 0 {
			return layout.Inset{Top: unit.Dp(16), Left: unit.Dp(20), Right: unit.Dp(16), Bottom: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(r.Theme, unit.Sp(28), "My Books")
				lbl.Font.Weight = font.Bold
				lbl.Color = colTitle
				return lbl.Layout(gtx)
			})
		}

		start := (row - 1) * cols
		end := min(start+cols, n)
		bottom := unit.Dp(20)
		if row == rows {
			bottom = 100
		}

		return layout.Inset{Left: unit.Dp(20), Right: unit.Dp(20), Bottom: bottom}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			x, height := 0, 0
			for i := start; i < end; i++ {
				trans := op.Offset(image.Pt(x, 0)).Push(gtx.Ops)
				cgtx := gtx
				cgtx.Constraints = layout.Exact(image.Pt(colWidth, gtx.Dp(250)))
				dims := r.layoutFolderCard(cgtx, &state.Items[i], i == state.Focus)
				trans.Pop()
				height = max(height, dims.Size.Y)
				x += colWidth + spacing
			}
			return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, height)}
		})
	})
}
