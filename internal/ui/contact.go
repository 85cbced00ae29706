package ui

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	contactName = iota
	contactEmail
	contactSubject
	contactMessage
	contactFields
)

const (
	contactRequired = "Please complete all required fields before sending."
	contactBadEmail = "Please enter a valid email address."
	contactThanks   = "Thank you for your message! I will get back to you soon."

	contactResetAfter = 3 * time.Second
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactResetMsg clears the form a while after a successful send.
type contactResetMsg struct{ form string }

// contactForm is the contact modal. Nothing leaves the machine; a valid
// message is acknowledged and the form resets.
type contactForm struct {
	id     string
	fields [contactFields]textinput.Model
	focus  int
	notice string
	sent   bool
	keys   contactKeys
}

func newContactForm() *contactForm {
	f := &contactForm{id: uuid.NewString(), keys: defaultContactKeys}
	labels := [contactFields]string{"Name *", "Email *", "Subject", "Message *"}
	for i := range f.fields {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.Prompt = ""
		ti.Width = 40
		ti.CharLimit = 120
		f.fields[i] = ti
	}
	f.fields[contactMessage].CharLimit = 1000
	f.fields[contactName].Focus()
	return f
}

func (f *contactForm) value(i int) string {
	return strings.TrimSpace(f.fields[i].Value())
}

func (f *contactForm) setFocus(i int) {
	f.fields[f.focus].Blur()
	f.focus = (i + contactFields) % contactFields
	f.fields[f.focus].Focus()
}

// validate returns the message to show for the current input, and whether
// the form can be sent.
func (f *contactForm) validate() (string, bool) {
	if f.value(contactName) == "" || f.value(contactEmail) == "" || f.value(contactMessage) == "" {
		return contactRequired, false
	}
	if !emailPattern.MatchString(f.value(contactEmail)) {
		return contactBadEmail, false
	}
	return contactThanks, true
}

func (f *contactForm) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, f.keys.Next):
		f.setFocus(f.focus + 1)
		return nil
	case key.Matches(msg, f.keys.Prev):
		f.setFocus(f.focus - 1)
		return nil
	case key.Matches(msg, f.keys.Send):
		return f.submit()
	}
	if !f.sent {
		f.notice = ""
	}
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return cmd
}

func (f *contactForm) submit() tea.Cmd {
	notice, ok := f.validate()
	f.notice, f.sent = notice, ok
	if !ok {
		return nil
	}
	slog.Debug("contact message accepted", "form", f.id, "subject", f.value(contactSubject))
	id := f.id
	return tea.Tick(contactResetAfter, func(time.Time) tea.Msg { return contactResetMsg{form: id} })
}

// reset empties every field and drops the notice.
func (f *contactForm) reset() {
	for i := range f.fields {
		f.fields[i].Reset()
	}
	f.notice, f.sent = "", false
	f.setFocus(contactName)
}

func (f *contactForm) view(t Theme) string {
	labels := [contactFields]string{"Name", "Email", "Subject", "Message"}
	var b strings.Builder
	for i, in := range f.fields {
		label := t.Label
		if i == f.focus {
			label = t.NavActive
		}
		b.WriteString(label.Render(padRight(labels[i], 8)) + " " + in.View() + "\n")
	}
	b.WriteString("\n")
	switch {
	case f.sent:
		b.WriteString(t.Success.Render(f.notice) + "\n\n")
	case f.notice != "":
		b.WriteString(t.Error.Render(f.notice) + "\n\n")
	}
	b.WriteString(t.Hint.Render("* required  •  tab next field  •  enter send  •  esc close"))
	return b.String()
}
