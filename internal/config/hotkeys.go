package config

import (
	"strings"

	"gioui.org/io/event"
	"gioui.org/io/key"
)

// HotkeysConfig holds keyboard shortcuts as strings like "Ctrl+B"
type HotkeysConfig struct {
	Open   string `json:"open"`   // show the detail card for the focused book
	Toggle string `json:"toggle"` // same as tapping the detail card
	Close  string `json:"close"`  // collapse back to the grid
	Buy    string `json:"buy"`
	Next   string `json:"next"` // move grid focus
	Prev   string `json:"prev"`
	Down   string `json:"down"`
	Up     string `json:"up"`
}

// Hotkey represents a parsed keyboard shortcut
type Hotkey struct {
	Key       key.Name
	Modifiers key.Modifiers
}

// ParseHotkey parses a hotkey string like "Ctrl+Shift+N" into a Hotkey struct
func ParseHotkey(s string) Hotkey {
	if s == "" {
		return Hotkey{}
	}

	var mods key.Modifiers
	var rawKeyPart string

	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods |= key.ModCtrl
		case "shift":
			mods |= key.ModShift
		case "alt", "option":
			mods |= key.ModAlt
		case "cmd", "command":
			mods |= key.ModCommand
		case "super", "meta", "win":
			mods |= key.ModSuper
		default:
			rawKeyPart = part
		}
	}

	return Hotkey{Key: parseKeyName(rawKeyPart), Modifiers: mods}
}

// parseKeyName converts a key string to Gio's key.Name
func parseKeyName(s string) key.Name {
	if len(s) == 1 {
		return key.Name(strings.ToUpper(s))
	}

	switch strings.ToLower(s) {
	case "up", "uparrow":
		return key.NameUpArrow
	case "down", "downarrow":
		return key.NameDownArrow
	case "left", "leftarrow":
		return key.NameLeftArrow
	case "right", "rightarrow":
		return key.NameRightArrow
	case "home":
		return key.NameHome
	case "end":
		return key.NameEnd
	case "enter", "return":
		return key.NameReturn
	case "tab":
		return key.NameTab
	case "space", "spacebar":
		return key.NameSpace
	case "escape", "esc":
		return key.NameEscape
	default:
		return key.Name(s)
	}
}

// Matches checks if a key event matches this hotkey exactly
func (h Hotkey) Matches(k key.Event) bool {
	if h.Key == "" {
		return false
	}
	return k.Name == h.Key && k.Modifiers == h.Modifiers
}

// IsEmpty returns true if the hotkey is not configured
func (h Hotkey) IsEmpty() bool {
	return h.Key == ""
}

// String returns a human-readable representation of the hotkey
func (h Hotkey) String() string {
	if h.Key == "" {
		return ""
	}

	var parts []string
	if h.Modifiers.Contain(key.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if h.Modifiers.Contain(key.ModCommand) {
		parts = append(parts, "Cmd")
	}
	if h.Modifiers.Contain(key.ModShift) {
		parts = append(parts, "Shift")
	}
	if h.Modifiers.Contain(key.ModAlt) {
		parts = append(parts, "Alt")
	}
	if h.Modifiers.Contain(key.ModSuper) {
		parts = append(parts, "Super")
	}
	parts = append(parts, string(h.Key))
	return strings.Join(parts, "+")
}

// Filter returns a key.Filter that matches this hotkey
func (h Hotkey) Filter(focus event.Tag) key.Filter {
	return key.Filter{
		Focus:    focus,
		Name:     h.Key,
		Required: h.Modifiers,
	}
}

// HotkeyMatcher holds parsed shortcuts
type HotkeyMatcher struct {
	Open   Hotkey
	Toggle Hotkey
	Close  Hotkey
	Buy    Hotkey
	Next   Hotkey
	Prev   Hotkey
	Down   Hotkey
	Up     Hotkey
}

// NewHotkeyMatcher creates a matcher from config
func NewHotkeyMatcher(cfg HotkeysConfig) *HotkeyMatcher {
	return &HotkeyMatcher{
		Open:   ParseHotkey(cfg.Open),
		Toggle: ParseHotkey(cfg.Toggle),
		Close:  ParseHotkey(cfg.Close),
		Buy:    ParseHotkey(cfg.Buy),
		Next:   ParseHotkey(cfg.Next),
		Prev:   ParseHotkey(cfg.Prev),
		Down:   ParseHotkey(cfg.Down),
		Up:     ParseHotkey(cfg.Up),
	}
}

// Filters returns one key filter per distinct configured hotkey.
func (m *HotkeyMatcher) Filters(focus event.Tag) []event.Filter {
	type filterKey struct {
		name key.Name
		mods key.Modifiers
	}
	seen := make(map[filterKey]bool)

	all := []Hotkey{m.Open, m.Toggle, m.Close, m.Buy, m.Next, m.Prev, m.Down, m.Up}
	filters := make([]event.Filter, 0, len(all))
	for _, hk := range all {
		if hk.IsEmpty() {
			continue
		}
		fk := filterKey{hk.Key, hk.Modifiers}
		if seen[fk] {
			continue
		}
		seen[fk] = true
		filters = append(filters, hk.Filter(focus))
	}
	return filters
}
