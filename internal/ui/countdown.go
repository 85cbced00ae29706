package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/folio-term/folio/internal/timer"
)

// countdownTickMsg carries the handle that was live when the tick was armed.
type countdownTickMsg struct {
	widget string
	handle timer.Handle
}

func countdownTick(widget string, h timer.Handle) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{widget: widget, handle: h}
	})
}

const noField = -1

// timerWidget is one open timer modal.
type timerWidget struct {
	id     string
	cd     *timer.Countdown
	fields [3]textinput.Model // hours, minutes, seconds
	focus  int
	keys   timerKeys
}

func newTimerWidget(total int, sound bool, alarm timer.Alarm) *timerWidget {
	w := &timerWidget{
		id:    uuid.NewString(),
		cd:    timer.New(total, alarm),
		focus: noField,
		keys:  defaultTimerKeys,
	}
	w.cd.SetSound(sound)
	for i, ph := range []string{"HH", "MM", "SS"} {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 2
		ti.Width = 3
		ti.Prompt = ""
		w.fields[i] = ti
	}
	w.syncFields()
	return w
}

// syncFields writes the configured duration back into the inputs.
func (w *timerWidget) syncFields() {
	h, m, s := timer.Split(w.cd.Total())
	for i, v := range []int{h, m, s} {
		w.fields[i].SetValue(fmt.Sprintf("%02d", v))
	}
}

func (w *timerWidget) setFocus(i int) {
	if w.focus != noField {
		w.fields[w.focus].Blur()
		w.syncFields()
	}
	w.focus = i
	if i != noField {
		w.fields[i].Focus()
		w.fields[i].CursorEnd()
	}
}

// cycleFocus moves through the fields and then to no field at all.
func (w *timerWidget) cycleFocus(step int) {
	if w.cd.Running() {
		return
	}
	next := w.focus + step
	switch {
	case next > 2:
		next = noField
	case next < noField:
		next = 2
	}
	w.setFocus(next)
}

func (w *timerWidget) configureFromFields() {
	err := w.cd.Configure(
		timer.ParseField(w.fields[0].Value()),
		timer.ParseField(w.fields[1].Value()),
		timer.ParseField(w.fields[2].Value()),
	)
	if err != nil {
		// Running countdowns ignore edits.
		w.syncFields()
	}
}

func isFieldKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

// update applies a key and returns the tick command when a countdown starts.
func (w *timerWidget) update(msg tea.KeyMsg) tea.Cmd {
	if w.focus != noField && isFieldKey(msg) {
		var cmd tea.Cmd
		w.fields[w.focus], cmd = w.fields[w.focus].Update(msg)
		w.configureFromFields()
		return cmd
	}

	switch {
	case key.Matches(msg, w.keys.Next):
		w.cycleFocus(1)
	case key.Matches(msg, w.keys.Prev):
		w.cycleFocus(-1)
	case key.Matches(msg, w.keys.Start):
		return w.start()
	case key.Matches(msg, w.keys.Pause):
		w.cd.Pause()
	case key.Matches(msg, w.keys.Reset):
		w.cd.Reset()
	case key.Matches(msg, w.keys.Sound):
		w.cd.SetSound(!w.cd.Sound())
	}
	return nil
}

func (w *timerWidget) start() tea.Cmd {
	w.setFocus(noField)
	h, err := w.cd.Start()
	if err != nil || h == 0 {
		return nil
	}
	return countdownTick(w.id, h)
}

func (w *timerWidget) view(t Theme) string {
	clock := t.Entry.Render(w.cd.Clock())
	if w.cd.Status() == timer.StatusDone {
		clock = t.Success.Render(w.cd.Clock())
	}
	screen := t.Screen.Width(30).Align(lipgloss.Center).Render(
		clock + "\n" + t.Label.Render(w.cd.Status().String()))

	bar := progress.New(progress.WithSolidFill(t.Progress), progress.WithoutPercentage())
	bar.Width = 30

	sep := t.Hint.Render(":")
	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		w.fields[0].View(), sep, w.fields[1].View(), sep, w.fields[2].View())

	sound := "[ ] Sound"
	if w.cd.Sound() {
		sound = "[x] Sound"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		screen,
		"",
		bar.ViewAs(w.cd.Progress()),
		"",
		t.Label.Render("Set ")+fields+"   "+t.Value.Render(sound),
	)
}
