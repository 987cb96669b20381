package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Panels
	ToggleSidebar key.Binding
	ToggleChat    key.Binding
	ReloadNews    key.Binding
	ReloadLaunch  key.Binding

	// Chat
	Send       key.Binding
	CloseChat  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		ToggleSidebar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sidebar"),
		),
		ToggleChat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Comms"),
		),
		ReloadNews: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload news"),
		),
		ReloadLaunch: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Re-acquire launch"),
		),

		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Transmit"),
		),
		CloseChat: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close comms"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Scroll down"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSidebar, k.ToggleChat, k.ReloadNews, k.Help, k.Quit}
}

// ChatHelp returns key bindings shown while the chat input has focus.
func (k keyMap) ChatHelp() []key.Binding {
	return []key.Binding{k.Send, k.CloseChat, k.ScrollUp, k.ScrollDown}
}

// FullHelp returns key bindings for the help overlay, grouped by section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleSidebar, k.ToggleChat, k.ReloadNews, k.ReloadLaunch},
		{k.Send, k.CloseChat, k.ScrollUp, k.ScrollDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
