package ui

import "image/color"

var (
	colWhite      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colBackground = color.NRGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 255}
	colScreen     = color.NRGBA{R: 0x20, G: 0x20, B: 0x24, A: 255} // behind the tilted grid
	colTitle      = color.NRGBA{R: 0x11, G: 0x1B, B: 0x1C, A: 255}
	colBackCard   = color.NRGBA{R: 0x6D, G: 0xC4, B: 0xDD, A: 255}
	colCoverEmpty = color.NRGBA{R: 0xD8, G: 0xDE, B: 0xE0, A: 255}
	colScrim      = color.NRGBA{R: 0x11, G: 0x1B, B: 0x1C, A: 255}
	colPanel      = color.NRGBA{R: 0, G: 0, B: 0, A: 153}
	colBuyBtn     = color.NRGBA{R: 0x6D, G: 0xC4, B: 0xDD, A: 204}
	colFocus      = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	colShadow     = color.NRGBA{R: 0, G: 0, B: 0, A: 50}
)

// transparent returns c with zero alpha, for gradient ends.
func transparent(c color.NRGBA) color.NRGBA {
	c.A = 0
	return c
}
