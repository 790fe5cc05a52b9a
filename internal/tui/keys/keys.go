package keys

import "github.com/charmbracelet/bubbles/key"

// SessionKeys are the bindings for the interactive terminal session.
// Normal mode navigates and toggles display options; insert mode types
// into the send field, vim style.
type SessionKeys struct {
	Quit        key.Binding
	Help        key.Binding
	InsertMode  key.Binding
	Escape      key.Binding
	Enter       key.Binding
	Clear       key.Binding
	ToggleHex   key.Binding
	ToggleASCII key.Binding
	SendMode    key.Binding
	Up          key.Binding
	Down        key.Binding
}

func NewSessionKeys() SessionKeys {
	return SessionKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		InsertMode: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "insert mode"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal mode"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear buffer"),
		),
		ToggleHex: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle hex"),
		),
		ToggleASCII: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle ascii"),
		),
		SendMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "ascii/hex send"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "history back"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "history forward"),
		),
	}
}

func (k SessionKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.InsertMode, k.Clear, k.Quit}
}

func (k SessionKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.InsertMode, k.Escape, k.Enter, k.SendMode},
		{k.Clear, k.ToggleHex, k.ToggleASCII},
		{k.Help, k.Quit},
	}
}
