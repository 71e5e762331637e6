package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// 1. Filter prompt
	if m.FilterMode {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "enter":
				m.FilterMode = false
				m.TextInput.Blur()
				m.refreshDetails()
				return m, nil
			case "esc":
				m.FilterMode = false
				m.TextInput.Blur()
				m.TextInput.Reset()
				m.applyFilter("")
				m.refreshDetails()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		m.TextInput, cmd = m.TextInput.Update(msg)
		m.applyFilter(m.TextInput.Value())
		m.refreshDetails()
		return m, cmd
	}

	// 2. Normal mode
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		m.ListHeight = msg.Height - HeaderHeight - FooterHeight - UILayoutPadding
		if m.ListHeight < 1 {
			m.ListHeight = 1
		}

		vpWidth := msg.Width - m.leftWidth() - 4
		vpHeight := msg.Height - HeaderHeight - FooterHeight - UILayoutPadding
		if vpWidth < MinWrapWidth {
			vpWidth = MinWrapWidth
		}
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.Ready {
			m.Viewport = viewport.New(vpWidth, vpHeight)
			m.Viewport.YPosition = HeaderHeight + 1
			m.Ready = true
		} else {
			m.Viewport.Width = vpWidth
			m.Viewport.Height = vpHeight
		}
		m.refreshDetails()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "/":
			m.FilterMode = true
			m.TextInput.SetValue(m.ActiveFilter)
			return m, m.TextInput.Focus()

		case "esc":
			if m.ActiveFilter != "" {
				m.TextInput.Reset()
				m.applyFilter("")
				m.refreshDetails()
			}
			return m, nil

		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.ListOffset {
					m.ListOffset = m.Cursor
				}
				m.refreshDetails()
			}
			return m, nil

		case "down", "j":
			if m.Cursor < len(m.Visible)-1 {
				m.Cursor++
				if m.Cursor >= m.ListOffset+m.ListHeight {
					m.ListOffset++
				}
				m.refreshDetails()
			}
			return m, nil

		case "home", "g":
			m.Cursor = 0
			m.ListOffset = 0
			m.refreshDetails()
			return m, nil
		}
	}

	// Remaining keys (pgup/pgdown, mouse) scroll the details pane
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// refreshDetails renders the selected record into the viewport
func (m *Model) refreshDetails() {
	if !m.Ready {
		return
	}
	d, ok := m.Selected()
	if !ok {
		m.Viewport.SetContent(StyleDim.Render("No secrets match."))
		return
	}
	m.Viewport.SetContent(RenderDetails(d, m.Viewport.Width-2))
	m.Viewport.GotoTop()
}
