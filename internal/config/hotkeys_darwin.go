//go:build darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for macOS
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		Open:   "Return",
		Toggle: "Space",
		Close:  "Escape",
		Buy:    "Cmd+B",
		Next:   "Right",
		Prev:   "Left",
		Down:   "Down",
		Up:     "Up",
	}
}
