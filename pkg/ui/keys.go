package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the grid's key bindings. It satisfies help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Search   key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Color    key.Binding
	Size     key.Binding
	SizeDown key.Binding
	Rotate   key.Binding
	Theme    key.Binding
	Mode     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Copy:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select + copy name")),
		Color:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next color")),
		Size:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "larger")),
		SizeDown: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "smaller")),
		Rotate:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Mode:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fuzzy/substring")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Copy, k.Color, k.Size, k.Rotate, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Search, k.Clear, k.Mode, k.Copy},
		{k.Color, k.Size, k.SizeDown, k.Rotate, k.Theme},
		{k.Help, k.Quit},
	}
}
