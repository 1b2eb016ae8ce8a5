// Package keys defines the key bindings used by the settings panel.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeys apply everywhere.
type CommonKeys struct {
	Quit   key.Binding
	Escape key.Binding
	Help   key.Binding
}

// PanelKeys drive the settings panel.
type PanelKeys struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Reset  key.Binding
}

// Common holds the global bindings.
var Common = CommonKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

// Panel holds the basic bindings: arrows, tab, space and enter.
var Panel = PanelKeys{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "increase"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset to defaults"),
	),
}

// EnhancedPanel adds vim-style movement and +/- stepping on top of
// Panel. Used while the keyboardNavigation setting is on.
var EnhancedPanel = PanelKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next"),
	),
	Next: Panel.Next,
	Prev: Panel.Prev,
	Left: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/h", "decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "+", "="),
		key.WithHelp("→/l", "increase"),
	),
	Toggle: Panel.Toggle,
	Reset:  Panel.Reset,
}

// For returns the panel bindings for the keyboardNavigation setting.
func For(enhanced bool) PanelKeys {
	if enhanced {
		return EnhancedPanel
	}
	return Panel
}

// ShortHelp returns the bindings shown in the help bar.
func (k PanelKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Left, k.Right, Common.Quit}
}

// FullHelp returns every binding grouped by column.
func (k PanelKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Toggle, k.Left, k.Right},
		{k.Reset, Common.Help, Common.Quit},
	}
}
