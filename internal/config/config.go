package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	Window    WindowConfig    `json:"window"`
	Grid      GridConfig      `json:"grid"`
	Animation AnimationConfig `json:"animation"`
	Gesture   GestureConfig   `json:"gesture"`
	Assets    AssetsConfig    `json:"assets"`
	Hotkeys   HotkeysConfig   `json:"hotkeys"`
}

// WindowConfig holds the initial window settings
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`  // dp
	Height int    `json:"height"` // dp
}

// GridConfig holds shelf grid layout settings
type GridConfig struct {
	MinColumn int `json:"minColumn"` // dp
	MaxColumn int `json:"maxColumn"` // dp
	Spacing   int `json:"spacing"`   // dp
}

// AnimationConfig holds the spring shared by every layer transition
type AnimationConfig struct {
	Response float64 `json:"response"` // seconds
	Damping  float64 `json:"damping"`  // damping fraction
}

// GestureConfig holds drag settings
type GestureConfig struct {
	DismissThreshold float32 `json:"dismissThreshold"` // dp dragged down to close the detail card
}

// AssetsConfig holds cover image settings
type AssetsConfig struct {
	Dir          string `json:"dir"`          // directory of <ref>.png/.jpg/.webp covers, empty for placeholders
	CacheEntries int    `json:"cacheEntries"` // decoded covers kept in memory
	MaxPixels    int    `json:"maxPixels"`    // covers are downscaled to this size
}

// Environment variables that override the config file. They may also be
// set in a .env file in the working directory.
const (
	EnvAssetsDir        = "FOLDERLIKE_ASSETS_DIR"
	EnvSpringResponse   = "FOLDERLIKE_SPRING_RESPONSE"
	EnvSpringDamping    = "FOLDERLIKE_SPRING_DAMPING"
	EnvDismissThreshold = "FOLDERLIKE_DISMISS_THRESHOLD"
)

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a configuration manager for path. An empty path uses
// ConfigPath().
func NewManager(path string) *Manager {
	if path == "" {
		path = ConfigPath()
	}
	return &Manager{
		config: DefaultConfig(),
		path:   path,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "My Books",
			Width:  420,
			Height: 844,
		},
		Grid: GridConfig{
			MinColumn: 150,
			MaxColumn: 170,
			Spacing:   20,
		},
		Animation: AnimationConfig{
			Response: 0.5,
			Damping:  0.6,
		},
		Gesture: GestureConfig{
			DismissThreshold: 50,
		},
		Assets: AssetsConfig{
			CacheEntries: 32,
			MaxPixels:    512,
		},
		Hotkeys: DefaultHotkeys(),
	}
}

// ConfigPath returns the config file path: ~/.config/folderlike/config.json
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "folderlike", "config.json")
}

// Path returns the file the manager reads and writes.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Load reads the configuration from the config file
// If the file doesn't exist, creates it with defaults
// If parsing fails, stores the error and returns defaults
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.parseErr = nil

	configDir := filepath.Dir(m.path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Printf("Config: failed to create directory %s: %v", configDir, err)
		return err
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		if saveErr := m.saveUnlocked(); saveErr != nil {
			log.Printf("Config: failed to save default config: %v", saveErr)
			return saveErr
		}
		return nil
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", m.path, err)
		return err
	}

	// Start from defaults so missing keys keep sane values
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil // Don't return error - we're using defaults
	}

	log.Printf("Config: loaded from %s", m.path)
	m.config = cfg
	return nil
}

// ApplyEnv loads .env files (missing files are ignored) and applies
// FOLDERLIKE_* overrides on top of the loaded config. Malformed numbers are
// reported and skipped.
func (m *Manager) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if v := os.Getenv(EnvAssetsDir); v != "" {
		m.config.Assets.Dir = v
	}
	if v := os.Getenv(EnvSpringResponse); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			m.config.Animation.Response = f
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSpringResponse, err))
		}
	}
	if v := os.Getenv(EnvSpringDamping); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			m.config.Animation.Damping = f
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSpringDamping, err))
		}
	}
	if v := os.Getenv(EnvDismissThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			m.config.Gesture.DismissThreshold = float32(f)
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDismissThreshold, err))
		}
	}
	for _, err := range errs {
		log.Printf("Config: ignoring override: %v", err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// GenerateConfig backs up the existing config at path and writes a fresh
// default one. Returns the backup path, or "" if there was nothing to back up.
func GenerateConfig(path string) (backupPath string, err error) {
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		timestamp := time.Now().Format("20060102-150405")
		backupPath = filepath.Join(filepath.Dir(path), "config.backup."+timestamp+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read existing config: %w", err)
		}
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return backupPath, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return backupPath, fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return backupPath, fmt.Errorf("failed to write config: %w", err)
	}
	return backupPath, nil
}
