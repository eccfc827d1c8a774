package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/gallery"
)

func newModel() Model {
	return New(catalog.Default(), gallery.DefaultDismissThreshold, 844)
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		keys []string
		want int
	}{
		{[]string{"right"}, 1},
		{[]string{"down", "down"}, 4},
		{[]string{"left"}, 0},
		{[]string{"up"}, 0},
		{[]string{"down", "right", "up"}, 1},
	}
	for _, tt := range tests {
		m := send(newModel(), tt.keys...)
		if m.Cursor() != tt.want {
			t.Errorf("keys %v: expected cursor %d, got %d", tt.keys, tt.want, m.Cursor())
		}
	}
}

func TestSelectAndToggle(t *testing.T) {
	m := send(newModel(), "right", "enter")
	s := m.State()
	if s.Selected.Title != "Thirst" || !s.Expanded {
		t.Fatalf("after select: expected Thirst expanded, got %q expanded=%v", s.Selected.Title, s.Expanded)
	}

	m = send(m, "space")
	if m.State().Expanded {
		t.Error("space should collapse")
	}
	m = send(m, "space")
	if !m.State().Expanded {
		t.Error("second space should expand again")
	}
}

func TestDragAndRelease(t *testing.T) {
	tests := []struct {
		name         string
		drags        int
		wantExpanded bool
	}{
		{"at threshold stays", 5, true},
		{"past threshold dismisses", 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(newModel(), "enter")
			for i := 0; i < tt.drags; i++ {
				m = send(m, "j")
			}
			if got := m.State().DragOffset.Y; got != float32(tt.drags*DragStep) {
				t.Fatalf("expected drag offset %d, got %v", tt.drags*DragStep, got)
			}
			m = send(m, "r")
			s := m.State()
			if s.Expanded != tt.wantExpanded {
				t.Errorf("expected expanded=%v, got %v", tt.wantExpanded, s.Expanded)
			}
			if s.DragOffset.X != 0 || s.DragOffset.Y != 0 {
				t.Errorf("expected zero drag offset after release, got %v", s.DragOffset)
			}
		})
	}
}

func TestReleaseWithoutDrag(t *testing.T) {
	m := send(newModel(), "enter", "r")
	if !m.State().Expanded {
		t.Error("release with no drag should not change the phase")
	}
}

func TestCopyAndBuy(t *testing.T) {
	m := newModel()
	var copied string
	var bought catalog.Book
	m.copyText = func(s string) error { copied = s; return nil }
	m.buy = func(b catalog.Book) { bought = b }

	m = send(m, "y", "b")
	if copied != "Sidd HARTHA" {
		t.Errorf("expected title copied, got %q", copied)
	}
	if bought.Title != "Sidd HARTHA" {
		t.Errorf("expected buy for first book, got %q", bought.Title)
	}

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = send(m, "y")
	if !strings.Contains(m.Status(), "no clipboard") {
		t.Errorf("expected copy failure in status, got %q", m.Status())
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewShowsTransform(t *testing.T) {
	m := send(newModel(), "enter")
	v := m.View()
	for _, want := range []string{"My Books", "Buy it for $29.99", "grid y=-450", "scale=0.90"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
