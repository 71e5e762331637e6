package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/devpopsdotin/secret-lens/internal/secrets"
)

// Model is the Bubble Tea model for browsing decoded secrets
type Model struct {
	Records []secrets.Decoded
	Visible []int // indexes into Records that match ActiveFilter

	// List view
	Cursor     int
	ListOffset int
	ListHeight int

	// Filter prompt
	TextInput    textinput.Model
	FilterMode   bool
	ActiveFilter string

	// Viewport for details pane
	Viewport viewport.Model
	Ready    bool

	// Window dimensions
	Width  int
	Height int

	// Title shown above the list (context and scope)
	Title string
}

// NewModel creates a browser over records, in the order given
func NewModel(records []secrets.Decoded, title string) Model {
	ti := textinput.New()
	ti.Placeholder = "filter namespace/name..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 50

	m := Model{
		Records:    records,
		TextInput:  ti,
		ListHeight: DefaultListHeight,
		Title:      title,
	}
	m.applyFilter("")
	return m
}

// Run shows the browser until the user quits or ctx is cancelled
func Run(ctx context.Context, records []secrets.Decoded, title string) error {
	p := tea.NewProgram(NewModel(records, title), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Selected returns the record under the cursor
func (m Model) Selected() (secrets.Decoded, bool) {
	if len(m.Visible) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Visible) {
		return secrets.Decoded{}, false
	}
	return m.Records[m.Visible[m.Cursor]], true
}

// applyFilter recomputes Visible and clamps the cursor
func (m *Model) applyFilter(filter string) {
	m.ActiveFilter = filter
	needle := strings.ToLower(filter)

	visible := make([]int, 0, len(m.Records))
	for i, r := range m.Records {
		if needle == "" || strings.Contains(strings.ToLower(r.ID()), needle) {
			visible = append(visible, i)
		}
	}
	m.Visible = visible

	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor < m.ListOffset {
		m.ListOffset = m.Cursor
	}
}
