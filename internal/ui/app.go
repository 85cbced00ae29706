package ui

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-term/folio/internal/config"
	"github.com/folio-term/folio/internal/content"
	"github.com/folio-term/folio/internal/db"
	"github.com/folio-term/folio/internal/notify"
	"github.com/folio-term/folio/internal/sound"
	"github.com/folio-term/folio/internal/timer"
)

type mode int

const (
	modePage mode = iota
	modeMenu
	modeProject
	modeResume
	modeCalculator
	modeTimer
	modeHistory
	modeContact
	modeHelp
)

// Deps are the collaborators a Model works with.
type Deps struct {
	Config config.Config
	Page   *content.Page
	Tape   *sql.DB
	Alarm  timer.Alarm
	Notify func(total int) error // nil disables notifications
}

type Model struct {
	width, height int

	cfg    config.Config
	page   *content.Page
	tape   *sql.DB
	alarm  timer.Alarm
	notify func(total int) error

	theme Theme
	keys  pageKeys
	help  help.Model
	vp    viewport.Model

	mode     mode
	helpFrom mode
	menu     int

	section      int
	cards        []string // project ids in page order
	cardSection  []int
	cursor       int
	sectionLines []int
	cardLines    []int

	project content.Project
	calc    *calcWidget
	timer   *timerWidget
	history history
	contact *contactForm

	status string
}

type notifiedMsg struct{ err error }

// New builds the page model. Nothing is drawn until the first WindowSizeMsg.
func New(d Deps) Model {
	m := Model{
		cfg:    d.Config,
		page:   d.Page,
		tape:   d.Tape,
		alarm:  d.Alarm,
		notify: d.Notify,
		theme:  ThemeFor(d.Config.Theme),
		keys:   defaultPageKeys,
		help:   help.New(),
		vp:     viewport.New(80, 20),
	}
	for si, sec := range m.page.Sections {
		for _, p := range m.page.InSection(sec.ID) {
			m.cards = append(m.cards, p.ID)
			m.cardSection = append(m.cardSection, si)
		}
	}
	m.renderContent()
	return m
}

func Run(cfg config.Config) error {
	page, err := content.Load()
	if err != nil {
		return err
	}
	dbh, err := db.Open()
	if err != nil {
		return err
	}
	defer dbh.Close()

	d := Deps{
		Config: cfg,
		Page:   page,
		Tape:   dbh,
		Alarm: sound.NewPlayer(sound.Tone{
			Frequency: cfg.Tone.Frequency,
			Duration:  cfg.Tone.Duration,
			Gain:      cfg.Tone.Gain,
		}),
	}
	if cfg.Notifications.Enabled {
		d.Notify = notify.TimerDone
	}

	slog.Info("starting tui", "theme", cfg.Theme)
	_, err = tea.NewProgram(New(d), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.page.Profile.Name)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case countdownTickMsg:
		if m.timer == nil || msg.widget != m.timer.id {
			return m, nil
		}
		switch m.timer.cd.Tick(msg.handle) {
		case timer.EventTick:
			return m, countdownTick(msg.widget, msg.handle)
		case timer.EventComplete:
			return m, m.timerDone()
		}
		return m, nil

	case tapeRecordedMsg:
		if msg.err != nil {
			m.status = "tape: " + msg.err.Error()
			slog.Warn("record tape line", "err", msg.err)
			return m, nil
		}
		if m.mode == modeHistory {
			m.history.add(msg.line)
		}
		return m, nil

	case tapeLoadedMsg:
		m.history.lines, m.history.summary, m.history.err = msg.lines, msg.summary, msg.err
		return m, nil

	case contactResetMsg:
		if m.contact != nil && msg.form == m.contact.id && m.contact.sent {
			m.contact.reset()
		}
		return m, nil

	case notifiedMsg:
		if msg.err != nil {
			slog.Warn("timer notification", "err", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.mode == modePage {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			m.syncSection()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modeProject:
		return m.updateProject(msg)
	case modeResume:
		switch msg.String() {
		case "esc", "q", "enter", "r":
			m.mode = modePage
		}
		return m, nil
	case modeHelp:
		switch msg.String() {
		case "esc", "q", "?":
			m.mode = m.helpFrom
		}
		return m, nil
	case modeHistory:
		switch msg.String() {
		case "n", "right", "l":
			m.history.next()
		case "p", "left":
			m.history.prev()
		case "esc", "q", "h":
			m.mode = modePage
		}
		return m, nil
	case modeCalculator:
		return m.updateCalculator(msg)
	case modeTimer:
		return m.updateTimer(msg)
	case modeContact:
		return m.updateContact(msg)
	}
	return m.updatePage(msg)
}

func (m Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.mode = modeMenu
		m.menu = m.section
	case key.Matches(msg, m.keys.NextSect):
		m.jumpToSection((m.section + 1) % len(m.page.Sections))
	case key.Matches(msg, m.keys.PrevSect):
		m.jumpToSection((m.section - 1 + len(m.page.Sections)) % len(m.page.Sections))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Open):
		if len(m.cards) > 0 {
			m.project = m.page.Project(m.cards[m.cursor])
			m.mode = modeProject
		}
	case key.Matches(msg, m.keys.Calculator):
		m.openCalculator()
	case key.Matches(msg, m.keys.Timer):
		m.openTimer()
	case key.Matches(msg, m.keys.Resume):
		m.mode = modeResume
	case key.Matches(msg, m.keys.History):
		m.mode = modeHistory
		m.history = history{page: 1}
		return m, loadTapeCmd(m.tape)
	case key.Matches(msg, m.keys.Contact):
		m.contact = newContactForm()
		m.mode = modeContact
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Help):
		m.helpFrom, m.mode = m.mode, modeHelp
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.syncSection()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.page.Sections)
	switch msg.String() {
	case "j", "down", "tab":
		m.menu = (m.menu + 1) % n
	case "k", "up", "shift+tab":
		m.menu = (m.menu - 1 + n) % n
	case "enter":
		m.jumpToSection(m.menu)
		m.mode = modePage
	case "esc", "m", "q":
		m.mode = modePage
	}
	return m, nil
}

func (m Model) updateProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		switch m.project.Widget {
		case content.WidgetCalculator:
			m.openCalculator()
		case content.WidgetTimer:
			m.openTimer()
		}
	case "esc", "q", "enter":
		m.mode = modePage
	}
	return m, nil
}

func (m Model) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.calc.keys.Close):
		m.closeCalculator()
		return m, nil
	case key.Matches(msg, m.calc.keys.Theme):
		m.toggleTheme()
		return m, nil
	case msg.String() == "?":
		m.helpFrom, m.mode = m.mode, modeHelp
		return m, nil
	}
	line, _ := m.calc.update(msg)
	if line == nil {
		return m, nil
	}
	return m, recordCmd(m.tape, *line)
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.timer.keys.Close):
		m.closeTimer()
		return m, nil
	case key.Matches(msg, m.timer.keys.Theme):
		m.toggleTheme()
		return m, nil
	case msg.String() == "?" && m.timer.focus == noField:
		m.helpFrom, m.mode = m.mode, modeHelp
		return m, nil
	}
	return m, m.timer.update(msg)
}

func (m Model) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.contact.keys.Close):
		m.contact = nil
		m.mode = modePage
		return m, nil
	case key.Matches(msg, m.contact.keys.Theme):
		m.toggleTheme()
		return m, nil
	}
	return m, m.contact.update(msg)
}

func (m *Model) openCalculator() {
	m.calc = newCalcWidget()
	m.mode = modeCalculator
	slog.Debug("calculator opened", "widget", m.calc.id)
}

func (m *Model) closeCalculator() {
	m.calc = nil
	m.mode = modePage
}

func (m *Model) openTimer() {
	if m.timer != nil {
		m.timer.cd.Close()
	}
	m.timer = newTimerWidget(m.cfg.TimerSeconds(), m.cfg.Timer.Sound, m.alarm)
	m.mode = modeTimer
	slog.Debug("timer opened", "widget", m.timer.id)
}

func (m *Model) closeTimer() {
	if m.timer != nil {
		m.timer.cd.Close()
	}
	m.timer = nil
	m.mode = modePage
}

// timerDone records the finished countdown and sends the notification.
func (m Model) timerDone() tea.Cmd {
	total := m.timer.cd.Total()
	cmds := []tea.Cmd{recordCmd(m.tape, db.Line{
		WidgetID: m.timer.id,
		Kind:     db.KindTimer,
		Expr:     timer.FormatClock(total),
		Result:   timer.StatusDone.String(),
	})}
	if send := m.notify; send != nil {
		cmds = append(cmds, func() tea.Msg { return notifiedMsg{err: send(total)} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.renderContent()
}

func (m *Model) layout() {
	header := lipgloss.Height(m.renderHeader())
	m.vp.Width = m.width
	m.vp.Height = max(3, m.height-header-1)
	m.help.Width = m.width
	m.renderContent()
}

func (m *Model) jumpToSection(i int) {
	if i < 0 || i >= len(m.sectionLines) {
		return
	}
	m.section = i
	m.vp.SetYOffset(m.sectionLines[i])
	for c, s := range m.cardSection {
		if s == i {
			m.cursor = c
			m.renderContent()
			break
		}
	}
}

func (m *Model) moveCursor(step int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+step, 0, len(m.cards)-1)
	m.renderContent()
	line := m.cardLines[m.cursor]
	if line < m.vp.YOffset || line >= m.vp.YOffset+m.vp.Height-3 {
		m.vp.SetYOffset(line)
	}
	m.section = m.cardSection[m.cursor]
}

// syncSection marks the section under the top of the viewport as active.
func (m *Model) syncSection() {
	for i, line := range m.sectionLines {
		if line <= m.vp.YOffset+1 {
			m.section = i
		}
	}
}

func (m *Model) renderContent() {
	width := max(40, m.width) - 4
	t := m.theme
	wrap := lipgloss.NewStyle().Width(width)

	var lines []string
	add := func(s string) { lines = append(lines, strings.Split(s, "\n")...) }

	add(wrap.Render(t.Value.Render(m.page.Profile.Summary)))
	add("")

	m.sectionLines = m.sectionLines[:0]
	m.cardLines = make([]int, len(m.cards))
	card := 0
	for _, sec := range m.page.Sections {
		m.sectionLines = append(m.sectionLines, len(lines))
		add(t.Title.Render(sec.Title))
		if sec.Body != "" {
			add(wrap.Render(sec.Body))
		}
		add("")
		for _, p := range m.page.InSection(sec.ID) {
			m.cardLines[card] = len(lines)
			style := t.Card
			if card == m.cursor {
				style = t.CardFocus
			}
			head := t.ModalTitle.Render(p.Title)
			if p.Widget != content.WidgetNone {
				head += "  " + t.Hint.Render("live "+string(p.Widget))
			}
			add(style.Width(width).Render(head + "\n" + p.Text))
			add("")
			card++
		}
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ui := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.vp.View(), m.statusBar())

	switch m.mode {
	case modeMenu:
		ui = overlayCenter(ui, m.modal("Menu", m.menuView()), m.width)
	case modeProject:
		ui = overlayCenter(ui, m.modal(m.project.Title, m.projectView()), m.width)
	case modeResume:
		ui = overlayCenter(ui, m.modal("Resume", m.resumeView()), m.width)
	case modeCalculator:
		ui = overlayCenter(ui, m.modal("Calculator", m.calc.view(m.theme)), m.width)
	case modeTimer:
		ui = overlayCenter(ui, m.modal("Timer", m.timer.view(m.theme)), m.width)
	case modeHistory:
		ui = overlayCenter(ui, m.modal("Session tape", m.history.view(m.theme)), m.width)
	case modeContact:
		ui = overlayCenter(ui, m.modal("Contact", m.contact.view(m.theme)), m.width)
	case modeHelp:
		ui = overlayCenter(ui, m.helpView(), m.width)
	}
	return ui
}

func (m Model) renderHeader() string {
	t := m.theme
	name := t.Title.Render(m.page.Profile.Name) + "  " + t.Label.Render(m.page.Profile.Title)

	var nav []string
	for i, sec := range m.page.Sections {
		if i == m.section {
			nav = append(nav, t.NavActive.Render(sec.Title))
		} else {
			nav = append(nav, t.NavItem.Render(sec.Title))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, name, strings.Join(nav, t.Hint.Render(" · ")))
}

func (m Model) statusBar() string {
	if m.status != "" {
		return m.theme.Error.Render(m.status)
	}
	switch m.mode {
	case modeCalculator:
		return m.help.View(m.calc.keys)
	case modeTimer:
		return m.help.View(m.timer.keys)
	case modeContact:
		return m.help.View(m.contact.keys)
	}
	return m.help.View(m.keys)
}

func (m Model) menuView() string {
	var b strings.Builder
	for i, sec := range m.page.Sections {
		line := "  " + sec.Title
		if i == m.menu {
			line = m.theme.NavActive.Render("› " + sec.Title)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.theme.Hint.Render("enter jump  •  esc close"))
	return b.String()
}

func (m Model) projectView() string {
	t := m.theme
	p := m.project
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(56).Render(p.Text) + "\n")
	if len(p.Details) > 0 {
		b.WriteString("\n" + t.Label.Render(p.DetailsHeading()) + "\n")
		for _, d := range p.Details {
			b.WriteString("  • " + d + "\n")
		}
	}
	hint := "esc close"
	if p.Widget != content.WidgetNone {
		hint = fmt.Sprintf("o open %s  •  %s", p.Widget, hint)
	}
	b.WriteString("\n" + t.Hint.Render(hint))
	return b.String()
}

func (m Model) resumeView() string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render(m.page.Profile.Name) + "\n\n")
	for _, l := range m.page.Resume {
		b.WriteString(l + "\n")
	}
	b.WriteString("\n" + m.theme.Hint.Render("esc close"))
	return b.String()
}

func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true
	var body string
	switch m.helpFrom {
	case modeCalculator:
		body = "digits . + - * / enter esc backspace\n\n" + h.View(defaultCalcKeys)
	case modeTimer:
		body = h.View(defaultTimerKeys)
	default:
		body = h.View(m.keys)
	}
	return m.modal("Keys", body)
}

func (m Model) modal(title, content string) string {
	box := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.ModalTitle.Render(title),
		"",
		content,
	)
	return m.theme.ModalBox.Render(box)
}

// overlayCenter draws modal over the middle rows of base.
func overlayCenter(base, modal string, width int) string {
	lines := strings.Split(base, "\n")
	box := strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, modal), "\n")
	top := max(0, (len(lines)-len(box))/2)
	for i, l := range box {
		if top+i < len(lines) {
			lines[top+i] = l
		} else {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
