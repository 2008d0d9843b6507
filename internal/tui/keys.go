package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thomas-vilte/spicalc/internal/i18n"
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Clear key.Binding
	Reset key.Binding
	Quit  key.Binding
	Abort key.Binding
}

func newKeyMap(t *i18n.Translations) keyMap {
	msg := func(id string) string { return t.GetMessage(id, 0, nil) }

	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", msg("tui.help_next_field")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", msg("tui.help_prev_field")),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", msg("tui.help_up")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", msg("tui.help_down")),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", msg("tui.help_previous_option")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", msg("tui.help_next_option")),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", msg("tui.help_clear_grade")),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", msg("tui.help_reset")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", msg("tui.help_quit")),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Clear, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Clear, k.Reset, k.Quit},
	}
}
