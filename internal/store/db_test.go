package store

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewDB(t *testing.T) {
	d := NewDB()
	if d.RequestChan == nil || d.ResponseChan == nil {
		t.Fatal("NewDB channels not initialized")
	}
}

func receive(t *testing.T, d *DB) Response {
	t.Helper()
	select {
	case resp := <-d.ResponseChan:
		return resp
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for store response")
	}
	return Response{}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folderlike.db")
	d := NewDB()
	if err := d.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	go d.Start()
	defer close(d.RequestChan)

	d.RequestChan <- Request{Op: SaveSetting, Key: KeyWindowWidth, Value: "420"}
	if resp := receive(t, d); resp.Err != nil || resp.Op != SaveSetting {
		t.Fatalf("save: %+v", resp)
	}
	d.RequestChan <- Request{Op: SaveSetting, Key: KeyWindowWidth, Value: "500"}
	receive(t, d)

	d.RequestChan <- Request{Op: FetchSettings}
	resp := receive(t, d)
	if resp.Err != nil {
		t.Fatalf("fetch: %v", resp.Err)
	}
	if got := resp.Settings[KeyWindowWidth]; got != "500" {
		t.Errorf("%s: expected 500, got %q", KeyWindowWidth, got)
	}
	if len(resp.Settings) != 1 {
		t.Errorf("expected 1 setting, got %d", len(resp.Settings))
	}
}

func TestRequestsWithoutOpen(t *testing.T) {
	d := NewDB()
	go d.Start()
	defer close(d.RequestChan)

	d.RequestChan <- Request{Op: FetchSettings}
	if resp := receive(t, d); resp.Err == nil {
		t.Error("fetch without Open should fail")
	}
	d.RequestChan <- Request{Op: SaveSetting, Key: "k", Value: "v"}
	if resp := receive(t, d); resp.Err == nil {
		t.Error("save without Open should fail")
	}
}
