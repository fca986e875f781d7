package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: ink, stone and temple gold
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#A8A29E") // Stone
	Accent    = lipgloss.Color("#FBBF24") // Gold
	Success   = lipgloss.Color("#4ADE80") // Jade
	Error     = lipgloss.Color("#F87171") // Cinnabar
	Text      = lipgloss.Color("#FAFAF9") // Rice paper
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Ink
	BgCard    = lipgloss.Color("#292524") // Charcoal
	Border    = lipgloss.Color("#44403C") // Slate stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// CorrectHint marks a correct option the player did not choose.
	CorrectHint = lipgloss.NewStyle().
			Foreground(Success).
			Faint(true)

	Inert = lipgloss.NewStyle().
		Foreground(Border)

	Locked = lipgloss.NewStyle().
		Foreground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Accent).
		Padding(0, 1)
)
