package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the timeline
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	Jump       key.Binding
	Open       key.Binding
	Search     key.Binding
	SearchNext key.Binding
	SearchPrev key.Binding
	Help       key.Binding
	HelpPager  key.Binding
	Close      key.Binding
	Pager      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down", "pgdown", " "),
			key.WithHelp("j/↓/space", "next block"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
			key.WithHelp("k/↑", "previous block"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/home", "genesis block"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G/end", "latest block"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to block"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "block details"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SearchNext: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		SearchPrev: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous match"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		HelpPager: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help in pager"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "close"),
		),
		Pager: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Open, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last, k.Jump},
		{k.Open, k.Pager, k.Close},
		{k.Search, k.SearchNext, k.SearchPrev},
		{k.Help, k.HelpPager, k.Quit},
	}
}
