// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// ViewerKeyMap defines the keybindings for the document viewer.
type ViewerKeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Folding
	ToggleFold  key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding

	// Search
	FocusSearch key.Binding
	NextMatch   key.Binding
	PrevMatch   key.Binding

	// General
	Reload       key.Binding
	ToggleStatus key.Binding
	Help         key.Binding
	Escape       key.Binding
	Quit         key.Binding
}

// Viewer holds the viewer keybindings.
var Viewer = ViewerKeyMap{
	// Navigation
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),

	// Folding
	ToggleFold: key.NewBinding(
		key.WithKeys("tab", " "),
		key.WithHelp("tab", "toggle fold"),
	),
	ExpandAll: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "expand all folds"),
	),
	CollapseAll: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "collapse all folds"),
	),

	// Search
	FocusSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextMatch: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	PrevMatch: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous match"),
	),

	// General
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload file"),
	),
	ToggleStatus: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle status bar"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SearchKeyMap defines the keybindings while the search input has focus.
type SearchKeyMap struct {
	Execute     key.Binding
	Blur        key.Binding
	ToggleCase  key.Binding
	TogglePosix key.Binding
}

// Search holds the search input keybindings.
var Search = SearchKeyMap{
	Execute: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run search"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel search"),
	),
	ToggleCase: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle case sensitivity"),
	),
	TogglePosix: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "toggle posix groups"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.ToggleFold, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}, // Navigation
		{k.ToggleFold, k.ExpandAll, k.CollapseAll},            // Folding
		{k.FocusSearch, k.NextMatch, k.PrevMatch},             // Search
		{k.Reload, k.ToggleStatus, k.Help, k.Escape, k.Quit},  // General
	}
}
