package tui

import (
	"fmt"
	"strings"

	"github.com/abacus-io/abacus/internal/format"
)

// formatChoice applies one submenu selection to the last result, returning
// the display line, or ok=false when the choice isn't on the submenu.
func (m *Model) formatChoice(choice string) (line string, ok bool) {
	switch choice {
	case "1":
		return "    =  " + format.Decimal(m.result), true
	case "2":
		return "    =  " + format.Scientific(m.result), true
	case "3":
		return "    =  " + format.SexagesimalString(m.result), true
	case "4":
		if !m.canFraction {
			return "", false
		}
		return "    =  " + format.Fraction(m.result, m.settings.Format.MaxDenominator), true
	}
	return "", false
}

func (m Model) renderFormatMenu() string {
	var sb strings.Builder
	sb.WriteString(resultStyle.Render(m.exprText))
	sb.WriteString("\n")
	for _, line := range m.formatLines {
		sb.WriteString(formatLineStyle.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionHeaderStyle.Render("Formatting Submenu"))
	sb.WriteString("\n")
	options := []struct {
		number string
		title  string
	}{
		{"1", "Standard Format"},
		{"2", "Scientific Notation Format"},
		{"3", "Sexagesimal Format"},
	}
	for _, opt := range options {
		fmt.Fprintf(&sb, "  %s: %s\n", menuNumberStyle.Render(opt.number), opt.title)
	}
	if m.canFraction {
		fmt.Fprintf(&sb, "  %s: %s\n", menuNumberStyle.Render("4"), "Fraction Format")
	}
	fmt.Fprintf(&sb, "  %s: %s\n", menuNumberStyle.Render("9"), "Exit Submenu")
	return sb.String()
}
