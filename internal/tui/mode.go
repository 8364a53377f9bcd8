// Package tui provides the interactive task board.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Default navigation mode
	ModeSearch             // Editing the search text
	ModeDate               // Editing the date filter
	ModeAdd                // Typing a new task title
	ModeHelp               // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeDate:
		return "date"
	case ModeAdd:
		return "add"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch, ModeDate, ModeAdd:
		return true
	case ModeNormal, ModeHelp:
		return false
	}
	return false
}
