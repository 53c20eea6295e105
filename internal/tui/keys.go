package tui

import "github.com/charmbracelet/bubbles/key"

type overviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	More     key.Binding
	Fewer    key.Binding
	Stack    key.Binding
	Duration key.Binding
	Open     key.Binding
	Quit     key.Binding
}

func (k overviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.More, k.Fewer, k.Stack, k.Duration, k.Open, k.Quit}
}

func (k overviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type clockKeyMap struct {
	Toggle     key.Binding
	Next       key.Binding
	Prev       key.Binding
	Reset      key.Binding
	Duration   key.Binding
	FullScreen key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func (k clockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Prev, k.Next, k.Reset, k.Duration, k.FullScreen, k.Close}
}

func (k clockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

func newOverviewKeyMap() overviewKeyMap {
	return overviewKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		More:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "player")),
		Fewer:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "player")),
		Stack:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stack")),
		Duration: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duration")),
		Open:     key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "clock")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newClockKeyMap() clockKeyMap {
	return clockKeyMap{
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Next:       key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next")),
		Prev:       key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "prev")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Duration:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duration")),
		FullScreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "full screen")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
