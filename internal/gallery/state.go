// Package gallery owns the shelf's selection state and derives the visual
// transforms the host animates between the grid and the detail card.
package gallery

import (
	"gioui.org/f32"

	"github.com/justyntemme/folderlike/internal/catalog"
)

// DefaultDismissThreshold is how far, in logical units, the detail card has
// to be dragged down before release collapses it.
const DefaultDismissThreshold = 50

// Phase is the view state of the shelf.
type Phase int

const (
	Collapsed Phase = iota // grid visible
	Expanded               // detail card visible
)

func (p Phase) String() string {
	if p == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// State is the shelf's mutable selection state. DragOffset is only non-zero
// while a drag is in progress.
type State struct {
	Selected   catalog.Book
	Expanded   bool
	DragOffset f32.Point
}

// Phase reports the view state.
func (s State) Phase() Phase {
	if s.Expanded {
		return Expanded
	}
	return Collapsed
}
