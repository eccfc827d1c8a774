//go:build !darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for Windows/Linux
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		Open:   "Return",
		Toggle: "Space",
		Close:  "Escape",
		Buy:    "Ctrl+B",
		Next:   "Right",
		Prev:   "Left",
		Down:   "Down",
		Up:     "Up",
	}
}
