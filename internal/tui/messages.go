package tui

// ClearStatusMsg clears the transient status/error display.
type ClearStatusMsg struct{}
