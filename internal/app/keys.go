package app

import (
	"github.com/charmbracelet/bubbles/key"

	"barber-dash/internal/ui"
)

// KeyMap holds the dashboard-wide keybindings.
type KeyMap struct {
	SwitchPane key.Binding
	Search     key.Binding
	EndSearch  key.Binding
	Clear      key.Binding
	Open       key.Binding
	Store      key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default dashboard keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		EndSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open screen"),
		),
		Store: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle store"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys merges the dashboard and table bindings for the help view.
type helpKeys struct {
	app   KeyMap
	table ui.TableKeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{h.app.Search, h.app.Store, h.app.Help, h.app.Quit}, h.table.ShortHelp()...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{h.app.SwitchPane, h.app.Open, h.app.Refresh},
		{h.app.Search, h.app.EndSearch, h.app.Clear},
		{h.app.Store, h.app.Help, h.app.Quit},
	}, h.table.FullHelp()...)
}
