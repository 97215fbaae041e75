package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Send           key.Binding
	ToggleTheme    key.Binding
	ToggleSettings key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	Increase       key.Binding
	Decrease       key.Binding
	Close          key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
	Quit           key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		ToggleSettings: key.NewBinding(
			key.WithKeys("ctrl+s", "f2"),
			key.WithHelp("ctrl+s", "settings"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "decrease"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// chatKeys is the help view while chatting.
type chatKeys struct{ KeyMap }

func (k chatKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.ToggleSettings, k.ToggleTheme, k.ScrollUp, k.Quit}
}

func (k chatKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// settingsKeys is the help view while the settings panel is open.
type settingsKeys struct{ KeyMap }

func (k settingsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Decrease, k.Increase, k.Close}
}

func (k settingsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
