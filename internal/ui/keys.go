package ui

import "github.com/charmbracelet/bubbles/key"

// pageKeys are active while no modal is open.
type pageKeys struct {
	Menu       key.Binding
	NextSect   key.Binding
	PrevSect   key.Binding
	Down       key.Binding
	Up         key.Binding
	Open       key.Binding
	Calculator key.Binding
	Timer      key.Binding
	Resume     key.Binding
	History    key.Binding
	Contact    key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k pageKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Open, k.Calculator, k.Timer, k.Help, k.Quit}
}

func (k pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.NextSect, k.PrevSect, k.Down, k.Up, k.Open},
		{k.Calculator, k.Timer, k.Resume, k.History, k.Contact},
		{k.Theme, k.Help, k.Quit},
	}
}

var defaultPageKeys = pageKeys{
	Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	NextSect:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
	PrevSect:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
	Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next card")),
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev card")),
	Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Calculator: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calculator")),
	Timer:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
	Resume:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
	History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "session tape")),
	Contact:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "contact form")),
	Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark/light")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// calcKeys are the calculator modal's non-arithmetic keys. Digits,
// operators, enter/=, esc and backspace go straight to the calculator.
type calcKeys struct {
	MemClear    key.Binding
	MemRecall   key.Binding
	MemAdd      key.Binding
	MemSubtract key.Binding
	ClearEntry  key.Binding
	Theme       key.Binding
	Close       key.Binding
}

func (k calcKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.MemAdd, k.MemRecall, k.ClearEntry, k.Close}
}

func (k calcKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MemClear, k.MemRecall, k.MemAdd, k.MemSubtract},
		{k.ClearEntry, k.Theme, k.Close},
	}
}

var defaultCalcKeys = calcKeys{
	MemClear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "MC")),
	MemRecall:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "MR")),
	MemAdd:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "M+")),
	MemSubtract: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "M-")),
	ClearEntry:  key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "CE")),
	Theme:       key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark/light")),
	Close:       key.NewBinding(key.WithKeys("q", "ctrl+w", "ctrl+c"), key.WithHelp("q", "close")),
}

type timerKeys struct {
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	Sound key.Binding
	Next  key.Binding
	Prev  key.Binding
	Theme key.Binding
	Close key.Binding
}

func (k timerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Sound, k.Next, k.Close}
}

func (k timerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset, k.Sound},
		{k.Next, k.Prev, k.Theme, k.Close},
	}
}

var defaultTimerKeys = timerKeys{
	Start: key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start")),
	Pause: key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
	Reset: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
	Sound: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "sound on/off")),
	Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark/light")),
	Close: key.NewBinding(key.WithKeys("esc", "q", "ctrl+w", "ctrl+c"), key.WithHelp("esc", "close")),
}

// contactKeys leave printable keys to the form fields.
type contactKeys struct {
	Next  key.Binding
	Prev  key.Binding
	Send  key.Binding
	Theme key.Binding
	Close key.Binding
}

func (k contactKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Send, k.Close}
}

func (k contactKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Send},
		{k.Theme, k.Close},
	}
}

var defaultContactKeys = contactKeys{
	Next:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Send:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark/light")),
	Close: key.NewBinding(key.WithKeys("esc", "ctrl+w", "ctrl+c"), key.WithHelp("esc", "close")),
}
