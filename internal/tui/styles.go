package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	TitleText  lipgloss.Color
	TitleDone  lipgloss.Color
	ActiveText lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	TitleText:  lipgloss.Color("#DFE6E9"), // Light gray
	TitleDone:  lipgloss.Color("#636E72"), // Gray
	ActiveText: lipgloss.Color("#FFEAA7"), // Pale yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Inputs
	InputPrompt       lipgloss.Style
	InputPromptActive lipgloss.Style

	// Task rows
	TaskList      lipgloss.Style
	TaskTitle     lipgloss.Style
	TaskTitleDone lipgloss.Style
	TaskDate      lipgloss.Style
	StatusDone    lipgloss.Style
	StatusPending lipgloss.Style

	// Pagination
	PaginationDot       lipgloss.Style
	PaginationDotActive lipgloss.Style
	PageInfo            lipgloss.Style

	// Help
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Footer
	Footer  lipgloss.Style
	Spinner lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(8),

		InputPromptActive: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Width(8),

		TaskList: lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleText),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(Colors.TitleDone).
			Strikethrough(true),

		TaskDate: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		PaginationDot: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		PaginationDotActive: lipgloss.NewStyle().
			Foreground(Colors.ActiveText).
			Bold(true),

		PageInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Spinner: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StatusStyle returns the style for a completion label.
func (s Styles) StatusStyle(completed bool) lipgloss.Style {
	if completed {
		return s.StatusDone
	}
	return s.StatusPending
}

// TitleStyle returns the style for a task title.
func (s Styles) TitleStyle(completed bool) lipgloss.Style {
	if completed {
		return s.TaskTitleDone
	}
	return s.TaskTitle
}
