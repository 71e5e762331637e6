package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// UI Layout Constants
const (
	LeftPaneWidthRatio = 0.35
	MinLeftPaneWidth   = 20
	MinWrapWidth       = 10
	HeaderHeight       = 3
	FooterHeight       = 1
	UILayoutPadding    = 2

	DefaultListHeight = 20
)

// Palette: amber for secrets, teal for structure
var (
	ColorAccent  = lipgloss.Color("214") // amber
	ColorHeading = lipgloss.Color("80")  // teal
	ColorFailure = lipgloss.Color("203") // salmon
	ColorKey     = lipgloss.Color("222") // sand
	ColorMuted   = lipgloss.Color("244")
	ColorPEM     = lipgloss.Color("151") // pale green
	ColorInk     = lipgloss.Color("232")
	ColorBar     = lipgloss.Color("238")
)

// Lipgloss styles
var (
	StyleBorder   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).BorderForeground(ColorMuted)
	StylePane     = lipgloss.NewStyle().Padding(0, 1)
	StyleTitle    = lipgloss.NewStyle().Foreground(ColorHeading).Bold(true)
	StyleSelected = lipgloss.NewStyle().Foreground(ColorInk).Background(ColorAccent).Padding(0, 1)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	StyleErr      = lipgloss.NewStyle().Foreground(ColorFailure).Bold(true)
	StyleKey      = lipgloss.NewStyle().Foreground(ColorKey).Underline(true)
	StylePEM      = lipgloss.NewStyle().Foreground(ColorPEM)

	// Details header tab, underlined in the accent colour
	StyleTabActive = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, true, false).BorderForeground(ColorAccent).Foreground(ColorAccent).Padding(0, 1)

	StyleCmdBar = lipgloss.NewStyle().Foreground(ColorAccent).Background(ColorBar).Padding(0, 1)
)
