package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/folio-term/folio/internal/calc"
	"github.com/folio-term/folio/internal/db"
)

// calcWidget is one open calculator modal.
type calcWidget struct {
	id   string
	calc *calc.Calculator
	keys calcKeys
}

func newCalcWidget() *calcWidget {
	return &calcWidget{id: uuid.NewString(), calc: calc.New(), keys: defaultCalcKeys}
}

// update applies a key and returns the tape line for a resolved operation.
func (w *calcWidget) update(msg tea.KeyMsg) (*db.Line, bool) {
	switch {
	case key.Matches(msg, w.keys.MemClear):
		w.calc.MemoryClear()
		return nil, true
	case key.Matches(msg, w.keys.MemRecall):
		w.calc.MemoryRecall()
		return nil, true
	case key.Matches(msg, w.keys.MemAdd):
		w.calc.MemoryAdd()
		return nil, true
	case key.Matches(msg, w.keys.MemSubtract):
		w.calc.MemorySubtract()
		return nil, true
	case key.Matches(msg, w.keys.ClearEntry):
		w.calc.ClearEntry()
		return nil, true
	}

	k := msg.String()
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		k = string(msg.Runes)
	}
	st := w.calc.HandleKey(k)
	if !st.Resolved {
		return nil, st.Consumed
	}
	return &db.Line{
		WidgetID: w.id,
		Kind:     db.KindCalc,
		Expr:     st.Result.Expr,
		Result:   st.Result.Value,
		Failed:   st.Result.Failed,
	}, true
}

var calcPad = [][]string{
	{"MC", "MR", "M+", "M-"},
	{"C", "CE", "⌫", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", "", ".", "="},
}

func (w *calcWidget) view(t Theme) string {
	const width = 28
	d := w.calc.Display()

	label := d.Label
	if w.calc.Memory() != 0 {
		label = "M " + label
	}
	entry := t.Entry.Render(d.Entry)
	if w.calc.Failed() {
		entry = t.Error.Render(d.Entry)
	}
	screen := t.Screen.Width(width).Align(lipgloss.Right).Render(
		t.Label.Render(label) + "\n" + entry)

	var pad strings.Builder
	for _, row := range calcPad {
		for _, b := range row {
			pad.WriteString(t.Value.Render(padRight(b, 7)))
		}
		pad.WriteString("\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, screen, "", strings.TrimRight(pad.String(), "\n"))
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
