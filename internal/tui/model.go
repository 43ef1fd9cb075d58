package tui

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/abacus-io/abacus/internal/calc"
	"github.com/abacus-io/abacus/internal/format"
	"github.com/abacus-io/abacus/internal/logstore"
	"github.com/abacus-io/abacus/internal/models"
	"github.com/abacus-io/abacus/internal/triangle"
)

// view identifies the active screen.
type view int

const (
	viewMenu view = iota
	viewPrompt
	viewFormat
	viewTriangle
	viewLog
)

// confirmMode values.
const (
	confirmNone     = 0
	confirmQuit     = 1
	confirmReset    = 2
	confirmFreshLog = 3
)

// Model is the root Bubbletea model for the interactive session.
type Model struct {
	settings *models.Settings
	store    *logstore.Store
	diag     zerolog.Logger

	// UI state
	view        view
	confirmMode int
	menuCursor  int
	status      string
	statusErr   bool
	showHelp    bool
	width       int
	height      int

	// Active operation
	prompt      *Prompt
	result      float64
	exprText    string
	formatLines []string
	canFraction bool
	triangleOut string

	// Child components
	logViewer *LogViewer

	// Set when quitting without saving (unreadable log declined).
	skipSave bool
}

// NewModel creates the initial session model. logErr is a non-nil
// ErrLogUnavailable when the log file could not be read; the session then
// opens on the fresh-log confirmation instead of the menu.
func NewModel(settings *models.Settings, store *logstore.Store, logErr error) Model {
	m := Model{
		settings:  settings,
		store:     store,
		logViewer: NewLogViewer(),
	}
	if logErr != nil && errors.Is(logErr, logstore.ErrLogUnavailable) {
		m.confirmMode = confirmFreshLog
	}
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewer.SetSize(msg.Width-4, msg.Height-5)
		return m, nil

	case ClearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Interrupt saves what the session produced so far, like the classic
	// behavior on EOF.
	if msg.Type == tea.KeyCtrlC {
		return m.quitAndSave()
	}

	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	if key.Matches(msg, globalKeys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, globalKeys.Quit) {
		m.confirmMode = confirmQuit
		return m, nil
	}

	switch m.view {
	case viewMenu:
		return m.handleMenuKey(msg)
	case viewPrompt:
		return m.handlePromptKey(msg)
	case viewFormat:
		return m.handleFormatKey(msg)
	case viewTriangle:
		if key.Matches(msg, viewerKeys.Back) || msg.Type == tea.KeyEnter {
			m.view = viewMenu
		}
		return m, nil
	case viewLog:
		if key.Matches(msg, viewerKeys.Back) {
			m.view = viewMenu
			return m, nil
		}
		return m, m.logViewer.Update(msg)
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		mode := m.confirmMode
		m.confirmMode = confirmNone
		switch mode {
		case confirmQuit:
			return m.quitAndSave()
		case confirmReset:
			m.store.Reset()
			return m.withStatus("Log cleared; the empty log is written on exit.", false)
		case confirmFreshLog:
			m.store.Reset()
			return m.withStatus("Continuing with a fresh log.", false)
		}
	case "n", "N":
		mode := m.confirmMode
		m.confirmMode = confirmNone
		if mode == confirmFreshLog {
			// Declining the fresh log leaves the unreadable file untouched.
			m.skipSave = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m.withStatus("Invalid input! Answer y or n.", true)
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if item, ok := menuItemByNumber(msg.String()); ok {
		return m.selectMenuItem(item)
	}

	switch {
	case key.Matches(msg, menuKeys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, menuKeys.Down):
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, menuKeys.Enter):
		return m.selectMenuItem(menuItems[m.menuCursor])
	case key.Matches(msg, menuKeys.Exit):
		m.confirmMode = confirmQuit
	}
	return m, nil
}

func (m Model) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item.action {
	case actionAdd, actionSubtract, actionMultiply, actionDivide:
		m.prompt = newArithmeticPrompt(opForAction(item.action))
		m.view = viewPrompt
		return m, nil
	case actionTriangle:
		m.prompt = newTrianglePrompt()
		m.view = viewPrompt
		return m, nil
	case actionViewLog:
		m.logViewer.SetEntries(m.store.OldEntries(), m.store.NewEntries(), m.store.TotalCount())
		m.view = viewLog
		return m, nil
	case actionResetLog:
		m.confirmMode = confirmReset
		return m, nil
	case actionExit:
		m.confirmMode = confirmQuit
		return m, nil
	}
	return m, nil
}

func opForAction(action menuAction) calc.OpKind {
	switch action {
	case actionSubtract:
		return calc.OpSubtract
	case actionMultiply:
		return calc.OpMultiply
	case actionDivide:
		return calc.OpDivide
	}
	return calc.OpAdd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = nil
		m.view = viewMenu
		return m, nil
	case tea.KeyEnter:
		done, cancelled, err := m.prompt.Submit()
		if cancelled {
			m.prompt = nil
			m.view = viewMenu
			return m, nil
		}
		if err != nil {
			return m.withStatus("Invalid number! Please try again. Type 'x' to exit inputting.", true)
		}
		if !done {
			return m, nil
		}
		if m.prompt.triangle {
			return m.finishTriangle()
		}
		return m.finishArithmetic()
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m Model) finishArithmetic() (tea.Model, tea.Cmd) {
	values := m.prompt.Values()
	op := m.prompt.op
	a, b := values[0], values[1]
	m.prompt = nil
	m.view = viewMenu

	result, err := calc.Apply(op, a, b)
	if err != nil {
		switch {
		case errors.Is(err, calc.ErrDivisionByZero):
			return m.withStatus("Division by zero! Please try again.", true)
		case errors.Is(err, calc.ErrOverflow):
			return m.withStatus("Number too big in magnitude! Please try again.", true)
		}
		return m.withStatus(err.Error(), true)
	}

	aText, bText := format.Decimal(a), format.Decimal(b)
	resultText := format.Decimal(result)
	entry := models.NewLogEntry(aText, bText, op, resultText, time.Now())
	if err := m.store.Append(entry); err != nil {
		m.diag.Debug().Err(err).Msg("append failed")
		return m.withStatus(err.Error(), true)
	}

	m.result = result
	m.exprText = fmt.Sprintf("Calculation %s %s %s = %s", aText, op.Symbol(), bText, resultText)
	m.formatLines = []string{"    =  " + resultText}
	m.canFraction = result != math.Trunc(result)
	m.view = viewFormat
	return m, nil
}

func (m Model) finishTriangle() (tea.Model, tea.Cmd) {
	values := m.prompt.Values()
	m.prompt = nil
	m.view = viewMenu

	tri, err := triangle.Solve(values[0], values[1], values[2])
	if err != nil {
		return m.withStatus(err.Error(), true)
	}

	width := m.width - 6
	if width < 20 {
		width = 20
	}
	if width > 72 {
		width = 72
	}
	m.triangleOut = tri.Render(width)
	m.view = viewTriangle
	return m, nil
}

func (m Model) handleFormatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choice := msg.String()
	if choice == "9" || msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		m.view = viewMenu
		return m, nil
	}
	if line, ok := m.formatChoice(choice); ok {
		m.formatLines = append(m.formatLines, line)
		return m, nil
	}
	return m.withStatus("That is not a submenu option!", true)
}

// quitAndSave merges and persists the log, then exits. A failed save keeps
// the session alive so nothing is silently lost.
func (m Model) quitAndSave() (tea.Model, tea.Cmd) {
	if m.skipSave {
		return m, tea.Quit
	}
	if err := m.store.Save(); err != nil {
		m.diag.Debug().Err(err).Msg("save on exit failed")
		return m.withStatus(fmt.Sprintf("Could not save the log: %v", err), true)
	}
	return m, tea.Quit
}

// withStatus sets a transient status line cleared a few seconds later.
func (m Model) withStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusErr = isErr
	return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// View renders the active screen between the header and status bar.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.view {
	case viewMenu:
		content = m.renderMenu()
	case viewPrompt:
		content = m.prompt.View()
	case viewFormat:
		content = m.renderFormatMenu()
	case viewTriangle:
		content = m.triangleOut
	case viewLog:
		content = m.logViewer.View()
	}

	header := m.renderHeader()
	body := contentStyle.Height(m.height - 3).Render(content)
	return header + "\n" + body + "\n" + m.renderStatusBar()
}

func (m Model) renderHeader() string {
	title := headerStyle.Render(" Abacus")
	count := countStyle.Render(fmt.Sprintf("calculations: %d ", m.store.TotalCount()))
	gap := m.width - textWidth(title) - textWidth(count)
	if gap < 1 {
		gap = 1
	}
	return title + spaces(gap) + count
}
