package ui

import (
	"gioui.org/io/key"
	"gioui.org/layout"

	"github.com/justyntemme/folderlike/internal/debug"
)

// Keyboard input

// processGlobalInput handles the configured shortcuts. Filters have no focus
// tag so the shortcuts work wherever the pointer is.
func (r *Renderer) processGlobalInput(gtx layout.Context, state *State, eventOut *UIEvent) {
	if r.hotkeys == nil {
		return
	}

	filters := r.hotkeys.Filters(nil)
	for {
		e, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		k, ok := e.(key.Event)
		if !ok || k.State != key.Press {
			continue
		}
		debug.Log(debug.UI, "key: name=%q mods=0x%x", k.Name, k.Modifiers)

		if evt, ok := r.handleKey(k, state); ok && eventOut.Action == ActionNone {
			*eventOut = evt
		}
	}
}

// handleKey maps one key press to an event. Focus moves are applied to state
// directly and produce no event.
func (r *Renderer) handleKey(k key.Event, state *State) (UIEvent, bool) {
	hk := r.hotkeys

	if state.Expanded {
		switch {
		case hk.Close.Matches(k):
			return UIEvent{Action: ActionCollapse}, true
		case hk.Toggle.Matches(k), hk.Open.Matches(k):
			return UIEvent{Action: ActionToggle}, true
		case hk.Buy.Matches(k):
			return UIEvent{Action: ActionBuy, BookID: state.Selected.ID}, true
		}
		return UIEvent{}, false
	}

	cols := max(r.gridColumns, 1)
	switch {
	case hk.Next.Matches(k):
		r.moveFocus(state, 1)
	case hk.Prev.Matches(k):
		r.moveFocus(state, -1)
	case hk.Down.Matches(k):
		r.moveFocus(state, cols)
	case hk.Up.Matches(k):
		r.moveFocus(state, -cols)
	case hk.Open.Matches(k):
		if state.Focus >= 0 && state.Focus < len(state.Items) {
			return UIEvent{Action: ActionSelect, BookID: state.Items[state.Focus].Book.ID}, true
		}
	case hk.Toggle.Matches(k):
		return UIEvent{Action: ActionToggle}, true
	}
	return UIEvent{}, false
}

// moveFocus shifts the grid focus by delta, clamped to the item range. The
// first move with no focus lands on the first item.
func (r *Renderer) moveFocus(state *State, delta int) {
	n := len(state.Items)
	if n == 0 {
		return
	}
	if state.Focus < 0 {
		state.Focus = 0
		return
	}
	f := state.Focus + delta
	if f < 0 || f >= n {
		return
	}
	state.Focus = f
}
