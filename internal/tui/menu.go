package tui

import (
	"fmt"
	"strings"
)

// menuAction identifies what a main-menu item does.
type menuAction int

const (
	actionAdd menuAction = iota
	actionSubtract
	actionMultiply
	actionDivide
	actionTriangle
	actionViewLog
	actionResetLog
	actionExit
)

// menuItem is one numbered choice on the main menu.
type menuItem struct {
	number string
	title  string
	action menuAction
}

// menuItems mirrors the classic menu numbering; 9 exits.
var menuItems = []menuItem{
	{"1", "Addition", actionAdd},
	{"2", "Subtraction", actionSubtract},
	{"3", "Multiplication", actionMultiply},
	{"4", "Division", actionDivide},
	{"5", "Draw Triangle", actionTriangle},
	{"6", "View Log", actionViewLog},
	{"7", "Reset Log", actionResetLog},
	{"9", "Exit Program", actionExit},
}

// menuItemByNumber resolves a pressed digit to its menu item.
func menuItemByNumber(number string) (menuItem, bool) {
	for _, item := range menuItems {
		if item.number == number {
			return item, true
		}
	}
	return menuItem{}, false
}

func (m Model) renderMenu() string {
	var sb strings.Builder
	sb.WriteString(sectionHeaderStyle.Render("Menu"))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("Select from the following:"))
	sb.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%s: %s",
			menuNumberStyle.Render(item.number),
			menuItemStyle.Render(item.title))
		if i == m.menuCursor {
			line = selectedItemStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
