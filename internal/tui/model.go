// Package tui is a terminal rendition of the shelf. It drives the same
// gallery controller as the window, with keys standing in for taps and drags.
package tui

import (
	"fmt"
	"strings"

	"gioui.org/f32"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/debug"
	"github.com/justyntemme/folderlike/internal/gallery"
)

// DragStep is how far one j/k press moves the detail card.
const DragStep = 10

const (
	cellWidth = 24
	columns   = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111B1C")).Background(lipgloss.Color("#FAFAFA")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Width(cellWidth).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6DC4DD")).Padding(0, 1)
	cursorStyle = cellStyle.Copy().BorderForeground(lipgloss.Color("#FF9500")).Bold(true)
	detailStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#6DC4DD")).Padding(1, 2)
	buyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#007AFF")).Padding(0, 2)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Model is the bubbletea model for `folderlike browse`.
type Model struct {
	catalog      *catalog.Catalog
	ctrl         *gallery.Controller
	screenHeight float32

	cursor int
	drag   float32 // vertical translation of the drag in progress
	width  int
	status string

	// Hooks, replaced in tests
	copyText func(string) error
	buy      func(catalog.Book)
}

// New builds a model over c. screenHeight is the height Render assumes for
// the offscreen detail position.
func New(c *catalog.Catalog, threshold, screenHeight float32) Model {
	ctrl := gallery.NewController(c)
	ctrl.SetDismissThreshold(threshold)
	return Model{
		catalog:      c,
		ctrl:         ctrl,
		screenHeight: screenHeight,
		copyText:     clipboard.WriteAll,
		buy: func(b catalog.Book) {
			debug.Log(debug.APP, "buy %q for %s", b.Title, b.Price.Dollars())
		},
		status: "Ready",
	}
}

// State exposes the controller state.
func (m Model) State() gallery.State { return m.ctrl.State() }

// Cursor is the grid position under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Status is the last message shown under the shelf.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.moveCursor(-1)
		case "right", "l":
			m.moveCursor(1)
		case "up":
			m.moveCursor(-columns)
		case "down":
			m.moveCursor(columns)
		case "enter":
			b := m.catalog.At(m.cursor)
			m.ctrl.SelectItem(b)
			m.status = "Selected " + b.Title
		case " ":
			m.ctrl.ToggleExpanded()
			m.status = m.ctrl.Phase().String()
		case "j":
			m.dragBy(DragStep)
		case "k":
			m.dragBy(-DragStep)
		case "r":
			m.release()
		case "y":
			title := m.ctrl.State().Selected.Title
			if err := m.copyText(title); err != nil {
				m.status = "Copy failed: " + err.Error()
			} else {
				m.status = "Copied " + title
			}
		case "b":
			b := m.ctrl.State().Selected
			m.buy(b)
			m.status = "Buy " + b.Title + " for " + b.Price.Dollars()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	c := m.cursor + delta
	if c < 0 || c >= m.catalog.Len() {
		return
	}
	m.cursor = c
}

func (m *Model) dragBy(dy float32) {
	m.drag += dy
	m.ctrl.OnDragChanged(f32.Pt(0, m.drag))
	m.status = fmt.Sprintf("Dragging %.0f", m.drag)
}

func (m *Model) release() {
	if !m.ctrl.Dragging() {
		return
	}
	t := f32.Pt(0, m.drag)
	m.drag = 0
	m.ctrl.OnDragEnded(t)
	m.status = fmt.Sprintf("Released at %.0f: %s", t.Y, m.ctrl.Phase())
}

func (m Model) View() string {
	var b strings.Builder
	s := m.ctrl.State()

	b.WriteString(titleStyle.Render("My Books"))
	b.WriteString("\n\n")

	books := m.catalog.All()
	for row := 0; row < len(books); row += columns {
		var cells []string
		for i := row; i < min(row+columns, len(books)); i++ {
			style := cellStyle
			if i == m.cursor {
				style = cursorStyle
			}
			mark := " "
			if books[i].ID == s.Selected.ID {
				mark = "*"
			}
			cells = append(cells, style.Render(mark+" "+books[i].Title+"\n  "+dimStyle.Render(books[i].Author)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if s.Expanded {
		detail := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(s.Selected.Title),
			s.Selected.Author,
			"",
			buyStyle.Render("Buy it for "+s.Selected.Price.Dollars()),
		)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().MarginTop(max(0, int(s.DragOffset.Y/DragStep))).Render(detailStyle.Render(detail)))
		b.WriteString("\n")
	}

	t := gallery.Render(s, m.screenHeight)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("grid y=%.0f tilt=%.1f° scale=%.2f  detail y=%.0f  |  %s",
		t.GridOffsetY, t.GridTiltDeg, t.GridScale, t.DetailOffsetY, m.status)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("←→↑↓ move  enter select  space toggle  j/k drag  r release  y copy  b buy  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the browse program on the terminal.
func Run(c *catalog.Catalog, threshold, screenHeight float32) error {
	p := tea.NewProgram(New(c, threshold, screenHeight), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
