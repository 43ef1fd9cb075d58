package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit (asks for confirmation, then saves the log)"},
			{"Ctrl+c", "Quit immediately, saving the log"},
			{"Ctrl+h", "Toggle help"},
		},
	},
	{
		title: "Menu",
		keys: []helpKey{
			{"1-9", "Select a menu item directly"},
			{"j/k ↑/↓", "Navigate"},
			{"Enter", "Choose highlighted item"},
		},
	},
	{
		title: "Number input",
		keys: []helpKey{
			{"Enter", "Submit the number"},
			{"x / exit", "Cancel the operation"},
		},
	},
	{
		title: "Formatting submenu",
		keys: []helpKey{
			{"1", "Standard format"},
			{"2", "Scientific notation (2 d.p.)"},
			{"3", "Sexagesimal (degrees, minutes, seconds)"},
			{"4", "Fraction (non-integral results only)"},
			{"9", "Back to the menu"},
		},
	},
	{
		title: "Log view",
		keys: []helpKey{
			{"j/k PgUp/PgDn", "Scroll"},
			{"+", "Marks entries not yet saved"},
			{"Esc", "Back to the menu"},
		},
	},
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(overlayTitleStyle.Render("Help"))
	sb.WriteString("\n\n")
	for _, section := range helpSections {
		sb.WriteString(sectionHeaderStyle.Render(section.title))
		sb.WriteString("\n")
		for _, k := range section.keys {
			sb.WriteString("  ")
			sb.WriteString(keyStyle.Render(padRight(k.key, 14)))
			sb.WriteString(hintStyle.Render(k.desc))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(hintStyle.Render("Press any key to close"))

	box := overlayStyle.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
