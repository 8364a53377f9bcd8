package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding

	// Inputs
	Search       key.Binding // Focus the search input
	Date         key.Binding // Focus the date input
	Add          key.Binding // Focus the new task input
	ClearFilters key.Binding // Empty search and date

	// Input mode
	Submit key.Binding // Leave the input, or add the task
	Escape key.Binding // Leave the input keeping its text

	// General
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding // Works in every mode
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Date: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "date"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns keybindings to show in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Date, k.Add, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns keybindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.FirstPage},
		{k.Search, k.Date, k.ClearFilters, k.Add},
		{k.Submit, k.Escape, k.Help, k.Quit},
	}
}

// InputHelp returns keybindings shown while an input is focused.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Escape}
}
