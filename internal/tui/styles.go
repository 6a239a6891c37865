package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorAccent   = lipgloss.Color("69")
	colorText     = lipgloss.Color("252")
	colorSubtle   = lipgloss.Color("241")
	colorDisabled = lipgloss.Color("238")
	colorInfo     = lipgloss.Color("75")
)

//nolint:gochecknoglobals // Lip Gloss styles are shared, immutable values.
var (
	// HeaderStyle renders the list heading.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)

	// ItemStyle renders one list entry.
	ItemStyle = lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2)

	// InfoStyle renders informational notices.
	InfoStyle = lipgloss.NewStyle().Foreground(colorInfo)

	// SubtleStyle renders footers and help text.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// ButtonStyle renders an enabled, unfocused button.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 2)

	// ButtonFocusedStyle renders the enabled button that has focus.
	ButtonFocusedStyle = ButtonStyle.
				Bold(true).
				BorderForeground(colorAccent).
				Foreground(colorAccent)

	// ButtonDisabledStyle renders a button that cannot be activated.
	ButtonDisabledStyle = ButtonStyle.
				Faint(true).
				Foreground(colorDisabled).
				BorderForeground(colorDisabled)
)

// buttonGap is the space between the two buttons.
const buttonGap = "  "
