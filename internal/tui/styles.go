package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/duetrackr/internal/store"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorSecondary = lipgloss.Color("#FFFFFF")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")

	// Backgrounds by category.
	colorBackgroundBoy  = lipgloss.Color("#1B2B44")
	colorBackgroundGirl = lipgloss.Color("#3D1F33")
	colorNatural        = lipgloss.Color("#1A1B26")
)

func categoryBackground(c store.Category) lipgloss.Color {
	switch c {
	case store.CategoryMale:
		return colorBackgroundBoy
	case store.CategoryFemale:
		return colorBackgroundGirl
	}
	return colorNatural
}

// Styles
var (
	// Target toggle. The left and right halves mirror a segmented button.
	toggleSelectedLeftStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSecondary).
				Background(colorPrimary).
				Border(lipgloss.RoundedBorder(), true, false, true, true).
				BorderForeground(colorPrimary).
				Padding(0, 3)

	toggleUnselectedLeftStyle = lipgloss.NewStyle().
					Foreground(colorPrimary).
					Border(lipgloss.RoundedBorder(), true, false, true, true).
					BorderForeground(colorPrimary).
					Padding(0, 3)

	toggleSelectedRightStyle = lipgloss.NewStyle().
					Bold(true).
					Foreground(colorSecondary).
					Background(colorPrimary).
					Border(lipgloss.RoundedBorder(), true, true, true, false).
					BorderForeground(colorPrimary).
					Padding(0, 3)

	toggleUnselectedRightStyle = lipgloss.NewStyle().
					Foreground(colorPrimary).
					Border(lipgloss.RoundedBorder(), true, true, true, false).
					BorderForeground(colorPrimary).
					Padding(0, 3)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Countdown fields
	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Width(10).
			Align(lipgloss.Center)

	fieldValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	weeksValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
