package ui

import (
	"gioui.org/f32"
	"gioui.org/widget"

	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/gallery"
)

type UIAction int

// Actions that carry a book use UIEvent.BookID; drag actions use
// UIEvent.Translation.
const (
	ActionNone UIAction = iota
	ActionSelect
	ActionToggle
	ActionCollapse
	ActionDragChanged
	ActionDragEnded
	ActionBuy
)

func (a UIAction) String() string {
	switch a {
	case ActionSelect:
		return "select"
	case ActionToggle:
		return "toggle"
	case ActionCollapse:
		return "collapse"
	case ActionDragChanged:
		return "drag-changed"
	case ActionDragEnded:
		return "drag-ended"
	case ActionBuy:
		return "buy"
	default:
		return "none"
	}
}

// UIEvent is the user intent produced by one frame of layout.
type UIEvent struct {
	Action      UIAction
	BookID      string
	Translation f32.Point // dp, for drag actions
}

// BookItem is a grid card and its click state.
type BookItem struct {
	Book  catalog.Book
	click widget.Clickable
}

// State is what the renderer draws. The orchestrator owns it and refreshes
// Selected, Expanded and Transform before every frame.
type State struct {
	Items     []BookItem
	Selected  catalog.Book
	Expanded  bool
	Transform gallery.Transform // animated, in dp and degrees
	Focus     int               // keyboard focus in Items, -1 for none
}

// NewState builds grid items for every book in c.
func NewState(c *catalog.Catalog) State {
	items := make([]BookItem, c.Len())
	for i, b := range c.All() {
		items[i].Book = b
	}
	return State{
		Items:     items,
		Selected:  c.First(),
		Transform: gallery.Transform{GridScale: 1},
		Focus:     -1,
	}
}
