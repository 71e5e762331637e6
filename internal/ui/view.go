package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/devpopsdotin/secret-lens/internal/parser"
	"github.com/devpopsdotin/secret-lens/internal/secrets"
)

func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	leftWidth := m.leftWidth()

	// 1. LEFT PANE
	var listItems []string
	listItems = append(listItems, StyleTitle.Render("🔒 "+m.Title))
	status := fmt.Sprintf("%d/%d secrets", len(m.Visible), len(m.Records))
	if m.ActiveFilter != "" {
		status += fmt.Sprintf(" matching %q", m.ActiveFilter)
	}
	listItems = append(listItems, StyleDim.Render(status))
	listItems = append(listItems, "") // Spacer

	if len(m.Visible) == 0 {
		listItems = append(listItems, StyleDim.Render("Nothing to show."))
	} else {
		end := m.ListOffset + m.ListHeight
		if end > len(m.Visible) {
			end = len(m.Visible)
		}

		for i := m.ListOffset; i < end; i++ {
			d := m.Records[m.Visible[i]]
			label := truncate(d.ID(), leftWidth-4)
			if len(d.Failures()) > 0 {
				label += " !"
			}

			if m.Cursor == i {
				listItems = append(listItems, StyleSelected.Render(label))
			} else {
				listItems = append(listItems, StylePane.Render(label))
			}
		}
	}

	leftStack := lipgloss.JoinVertical(lipgloss.Left, listItems...)
	leftPane := StylePane.Width(leftWidth).Render(leftStack)

	// 2. RIGHT PANE
	tabs := StyleTabActive.Render("Data")
	rightView := StyleBorder.Width(m.Viewport.Width).Height(m.Viewport.Height).Render(m.Viewport.View())
	rightStack := lipgloss.JoinVertical(lipgloss.Left, tabs, rightView)

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightStack)

	// 3. FOOTER
	var footer string
	if m.FilterMode {
		footer = StyleCmdBar.Width(m.Width).Render(m.TextInput.View())
	} else {
		footer = StyleDim.Render(" [↑/↓] Select  [/] Filter  [Esc] Clear  [PgUp/PgDn] Scroll  [q] Quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, footer)
}

// RenderDetails renders one decoded secret for the details pane
func RenderDetails(d secrets.Decoded, width int) string {
	if width < MinWrapWidth {
		width = MinWrapWidth
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Namespace: ") + d.Namespace + "\n")
	b.WriteString(StyleTitle.Render("Name: ") + d.Name + "\n\n")

	if len(d.Fields) == 0 {
		b.WriteString(StyleDim.Render("(no data)"))
		return b.String()
	}

	wrapper := lipgloss.NewStyle().Width(width)
	for _, f := range d.Fields {
		b.WriteString(StyleKey.Render(f.Key) + "\n")
		if f.Err != nil {
			b.WriteString(StyleErr.Render(fmt.Sprintf("%s: %v", secrets.DecodeErrorPlaceholder, f.Err)))
			b.WriteString("\n\n")
			continue
		}

		switch parser.DetectFormat(f.Value) {
		case parser.FormatJSON:
			b.WriteString(parser.Render(f.Value))
		case parser.FormatPEM:
			// body lines stay unwrapped
			b.WriteString(StylePEM.Render(strings.TrimRight(f.Value, "\n")))
		default:
			b.WriteString(wrapper.Render(f.Value))
		}
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) leftWidth() int {
	w := int(float64(m.Width) * LeftPaneWidthRatio)
	if w < MinLeftPaneWidth {
		w = MinLeftPaneWidth
	}
	return w
}

// truncate shortens s to max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	if max < 5 {
		max = 5
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
