package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	Search   key.Binding
	Filter   key.Binding
	Sort     key.Binding
	Section  key.Binding
	Settings key.Binding
	Theme    key.Binding
	Reload   key.Binding
	Top      key.Binding
	Home     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		PrevPage: key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←/[", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→/]", "next page")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Section:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "news/events")),
		Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp feeds the status bar hints.
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Filter, k.Sort, k.Section, k.Help, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.Top},
		{k.Open, k.Search, k.Filter, k.Sort, k.Section},
		{k.Settings, k.Theme, k.Reload, k.Home, k.Help, k.Quit},
	}
}
