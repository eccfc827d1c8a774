package ui

import (
	"image"
	"image/color"
	"sync"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastError
)

// toast is a short notice pinned to the top of the window. The orchestrator
// may post one from any goroutine.
type toast struct {
	mu        sync.Mutex
	message   string
	kind      ToastKind
	expiresAt time.Time
}

const toastDuration = 2500 * time.Millisecond

// ShowToast displays message until it expires.
func (r *Renderer) ShowToast(message string, kind ToastKind) {
	r.toast.mu.Lock()
	defer r.toast.mu.Unlock()
	r.toast.message = message
	r.toast.kind = kind
	r.toast.expiresAt = time.Now().Add(toastDuration)
}

// ShowError is ShowToast with ToastError.
func (r *Renderer) ShowError(message string) {
	r.ShowToast(message, ToastError)
}

// activeToast returns the current message, or "" once it has expired.
func (r *Renderer) activeToast(now time.Time) (string, ToastKind, time.Time) {
	r.toast.mu.Lock()
	defer r.toast.mu.Unlock()
	if r.toast.message == "" || now.After(r.toast.expiresAt) {
		r.toast.message = ""
		return "", 0, time.Time{}
	}
	return r.toast.message, r.toast.kind, r.toast.expiresAt
}

func (r *Renderer) layoutToast(gtx layout.Context) layout.Dimensions {
	message, kind, expiresAt := r.activeToast(gtx.Now)
	if message == "" {
		return layout.Dimensions{}
	}
	gtx.Execute(op.InvalidateCmd{At: expiresAt})

	bg := color.NRGBA{R: 17, G: 27, B: 28, A: 235}
	if kind == ToastError {
		bg = color.NRGBA{R: 200, G: 50, B: 50, A: 240}
	}

	return layout.N.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(24), Left: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(360))

			macro := op.Record(gtx.Ops)
			dims := layout.Inset{Top: unit.Dp(10), Bottom: unit.Dp(10), Left: unit.Dp(16), Right: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body1(r.Theme, message)
				lbl.Color = colWhite
				return lbl.Layout(gtx)
			})
			call := macro.Stop()

			paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: dims.Size}, dims.Size.Y/2).Op(gtx.Ops))
			call.Add(gtx.Ops)
			return dims
		})
	})
}
