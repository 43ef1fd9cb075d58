package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/abacus-io/abacus/internal/models"
)

// LogViewer shows the calculation log in a scrollable viewport. Entries
// appended this session are marked so the user can tell what an exit will
// add to the file.
type LogViewer struct {
	vp     viewport.Model
	width  int
	height int
}

// NewLogViewer creates an empty log viewer.
func NewLogViewer() *LogViewer {
	return &LogViewer{vp: viewport.New(0, 0)}
}

// SetSize updates dimensions.
func (lv *LogViewer) SetSize(width, height int) {
	lv.width = width
	lv.height = height
	lv.vp.Width = width
	lv.vp.Height = height
}

// SetEntries fills the viewport with the current log contents.
func (lv *LogViewer) SetEntries(saved, unsaved []*models.LogEntry, total int) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", countStyle.Render(fmt.Sprintf("Total calculations: %d", total)))
	if len(saved)+len(unsaved) == 0 {
		sb.WriteString(hintStyle.Render("The log is empty."))
	}
	for _, entry := range saved {
		sb.WriteString(lv.entryLine(entry, false))
	}
	for _, entry := range unsaved {
		sb.WriteString(lv.entryLine(entry, true))
	}
	lv.vp.SetContent(sb.String())
	lv.vp.GotoBottom()
}

func (lv *LogViewer) entryLine(entry *models.LogEntry, unsaved bool) string {
	marker := " "
	if unsaved {
		marker = menuNumberStyle.Render("+")
	}
	line := fmt.Sprintf("%s %s %s", countStyle.Render(fmt.Sprintf("%4d", entry.Seq)), marker, entry.Raw)
	return ansi.Truncate(line, lv.width, "…") + "\n"
}

// Update forwards scroll keys to the viewport.
func (lv *LogViewer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	lv.vp, cmd = lv.vp.Update(msg)
	return cmd
}

// View renders the viewport.
func (lv *LogViewer) View() string {
	return lv.vp.View()
}
