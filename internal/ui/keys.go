package ui

import "github.com/charmbracelet/bubbles/key"

// TableKeyMap defines the data table's keybindings.
type TableKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Sort        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	MorePerPage key.Binding
	LessPerPage key.Binding
}

// DefaultTableKeyMap returns the default table keybindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[/pgup", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]/pgdn", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("{", "home"),
			key.WithHelp("{/home", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("}", "end"),
			key.WithHelp("}/end", "last page"),
		),
		MorePerPage: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more rows"),
		),
		LessPerPage: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rows"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.PrevPage, k.NextPage}
}

// FullHelp implements help.KeyMap.
func (k TableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Sort},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.MorePerPage, k.LessPerPage},
	}
}
