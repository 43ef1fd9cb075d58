package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderStatusBar() string {
	switch m.confirmMode {
	case confirmQuit:
		return renderConfirmBar("Are you sure you want to exit? (y/n)", m.width)
	case confirmReset:
		return renderConfirmBar("Clear the calculation log? (y/n)", m.width)
	case confirmFreshLog:
		return renderConfirmBar("The calculation log is unreadable. Continue with a fresh log? (y/n)", m.width)
	}

	if m.status != "" {
		if m.statusErr {
			return renderErrorBar(m.status, m.width)
		}
		return statusBarStyle.Width(m.width).Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(m.status))
	}

	return statusBarStyle.Width(m.width).Render(" " + m.keyHints())
}

func (m Model) keyHints() string {
	base := keyHint("Ctrl+q", "quit") + "  " + keyHint("Ctrl+h", "help")
	switch m.view {
	case viewMenu:
		return keyHint("1-9", "select") + "  " + keyHint("j/k", "navigate") + "  " +
			keyHint("Enter", "choose") + "  " + base
	case viewPrompt:
		return keyHint("Enter", "submit") + "  " + keyHint("x", "cancel input") + "  " + base
	case viewFormat:
		return keyHint("1-4", "format") + "  " + keyHint("9", "back to menu") + "  " + base
	case viewTriangle:
		return keyHint("Esc", "back") + "  " + base
	case viewLog:
		return keyHint("j/k PgUp/PgDn", "scroll") + "  " + keyHint("Esc", "back") + "  " + base
	}
	return base
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, w int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(w).
		Render(" " + msg)
}

func renderErrorBar(msg string, w int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(w).
		Render(" " + msg)
}

func textWidth(s string) int {
	return lipgloss.Width(s)
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
