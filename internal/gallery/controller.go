package gallery

import (
	"gioui.org/f32"

	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/debug"
)

// Controller maps taps and drags to state transitions. Events must be
// delivered serially from the window's event loop; it holds no locks.
type Controller struct {
	state     State
	threshold float32
	dragging  bool
}

// NewController starts collapsed with the catalog's first book selected.
func NewController(c *catalog.Catalog) *Controller {
	return &Controller{
		state:     State{Selected: c.First()},
		threshold: DefaultDismissThreshold,
	}
}

// SetDismissThreshold changes the vertical release distance that collapses
// the detail card.
func (c *Controller) SetDismissThreshold(v float32) {
	c.threshold = v
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Phase reports whether the detail card is showing.
func (c *Controller) Phase() Phase { return c.state.Phase() }

// Dragging reports whether a drag has changed since the last release.
func (c *Controller) Dragging() bool { return c.dragging }

// SelectItem shows the detail card for b.
func (c *Controller) SelectItem(b catalog.Book) {
	c.state.Selected = b
	c.state.Expanded = true
	debug.Log(debug.GESTURE, "select %q -> %s", b.ID, c.state.Phase())
}

// ToggleExpanded flips between grid and detail card.
func (c *Controller) ToggleExpanded() {
	c.state.Expanded = !c.state.Expanded
	debug.Log(debug.GESTURE, "toggle -> %s", c.state.Phase())
}

// OnDragChanged records the translation of an in-progress drag.
func (c *Controller) OnDragChanged(t f32.Point) {
	c.dragging = true
	c.state.DragOffset = t
}

// OnDragEnded collapses the detail card when it was pulled down past the
// dismiss threshold. The drag offset is always cleared.
func (c *Controller) OnDragEnded(t f32.Point) {
	if t.Y > c.threshold {
		c.state.Expanded = false
	}
	c.state.DragOffset = f32.Point{}
	c.dragging = false
	debug.Log(debug.GESTURE, "drag end dy=%.1f -> %s", t.Y, c.state.Phase())
}
