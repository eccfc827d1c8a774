// Package store persists window preferences in a small SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/folderlike/internal/debug"
)

type EventType int

const (
	FetchSettings EventType = iota
	SaveSetting
)

// Setting keys
const (
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

type Request struct {
	Op    EventType
	Key   string
	Value string
}

type Response struct {
	Op       EventType
	Settings map[string]string
	Err      error
}

type DB struct {
	conn         *sql.DB
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewDB() *DB {
	return &DB{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

// DefaultPath returns <UserConfigDir>/folderlike/folderlike.db.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folderlike", "folderlike.db"), nil
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}

	// WAL mode allows simultaneous readers and writers
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return fmt.Errorf("set synchronous: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return fmt.Errorf("create settings table: %w", err)
	}

	d.conn = db
	debug.Log(debug.STORE, "opened %s", dbPath)
	return nil
}

// Start serves requests until RequestChan is closed. Requests made without
// an open connection are answered with an error.
func (d *DB) Start() {
	for req := range d.RequestChan {
		switch req.Op {
		case FetchSettings:
			d.handleFetchSettings()
		case SaveSetting:
			d.handleSaveSetting(req.Key, req.Value)
		}
	}
}

var errNotOpen = errors.New("store: database not open")

func (d *DB) handleFetchSettings() {
	if d.conn == nil {
		d.ResponseChan <- Response{Op: FetchSettings, Err: errNotOpen}
		return
	}
	settings, err := d.Settings()
	d.ResponseChan <- Response{Op: FetchSettings, Settings: settings, Err: err}
}

func (d *DB) handleSaveSetting(key, value string) {
	if d.conn == nil {
		d.ResponseChan <- Response{Op: SaveSetting, Err: errNotOpen}
		return
	}
	err := d.Save(key, value)
	d.ResponseChan <- Response{Op: SaveSetting, Err: err}
}

// Settings reads every stored setting.
func (d *DB) Settings() (map[string]string, error) {
	rows, err := d.conn.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err == nil {
			settings[key] = value
		}
	}
	return settings, rows.Err()
}

// Save upserts a single setting.
func (d *DB) Save(key, value string) error {
	_, err := d.conn.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	debug.Log(debug.STORE, "saved %s=%s", key, value)
	return nil
}

func (d *DB) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}
