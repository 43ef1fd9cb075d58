package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	countStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	contentStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// Menu styles.
var (
	menuNumberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOrange)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)
)

// Prompt and result styles.
var (
	promptLabelStyle = lipgloss.NewStyle().
				Foreground(colorCyan)

	collectedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	formatLineStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// Status bar variants.
var (
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// Help overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)
)
