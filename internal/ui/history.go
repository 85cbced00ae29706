package ui

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-term/folio/internal/db"
	"github.com/folio-term/folio/internal/utils"
)

const (
	historyLimit   = 500
	historyPerPage = 10
)

type tapeLoadedMsg struct {
	lines   []db.Line
	summary []db.KindCount
	err     error
}

type tapeRecordedMsg struct {
	line db.Line
	err  error
}

func loadTapeCmd(dbh *sql.DB) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		lines, err := db.Recent(ctx, dbh, historyLimit)
		if err != nil {
			return tapeLoadedMsg{err: err}
		}
		summary, err := db.Summary(ctx, dbh)
		return tapeLoadedMsg{lines: lines, summary: summary, err: err}
	}
}

func recordCmd(dbh *sql.DB, line db.Line) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := db.Record(ctx, dbh, &line)
		return tapeRecordedMsg{line: line, err: err}
	}
}

// history is the session tape modal.
type history struct {
	lines   []db.Line
	summary []db.KindCount
	page    int
	err     error
}

// add puts a freshly recorded line on top. A line the last load already
// returned is skipped.
func (h *history) add(l db.Line) {
	for _, have := range h.lines {
		if have.ID == l.ID {
			return
		}
	}
	h.lines = append([]db.Line{l}, h.lines...)
	for i := range h.summary {
		if h.summary[i].Kind == l.Kind {
			h.summary[i].Lines++
			if l.Failed {
				h.summary[i].Failed++
			}
			return
		}
	}
	kc := db.KindCount{Kind: l.Kind, Lines: 1}
	if l.Failed {
		kc.Failed = 1
	}
	h.summary = append(h.summary, kc)
}

func (h *history) pagination() *utils.PaginationInfo {
	return utils.NewPagination(len(h.lines), historyPerPage, h.page)
}

func (h *history) next() {
	if p := h.pagination(); p.HasNext() {
		h.page = p.Current + 1
	}
}

func (h *history) prev() {
	if p := h.pagination(); p.HasPrev() {
		h.page = p.Current - 1
	}
}

func (h *history) view(t Theme) string {
	if h.err != nil {
		return t.Error.Render("load error: " + h.err.Error())
	}
	if len(h.lines) == 0 {
		return t.Hint.Render("Nothing on the tape yet. Use the calculator or the timer.")
	}

	r := utils.NewRenderer(&utils.RenderConfig{Format: utils.FormatDefault, Width: 60, Color: true, Location: time.Local})
	p := h.pagination()
	lo, hi := p.Slice()

	var b strings.Builder
	var counts []string
	for _, kc := range h.summary {
		counts = append(counts, fmt.Sprintf("%s %d (%d failed)", kc.Kind, kc.Lines, kc.Failed))
	}
	if len(counts) > 0 {
		b.WriteString(t.Label.Render(strings.Join(counts, "  ·  ")) + "\n\n")
	}
	for _, l := range h.lines[lo:hi] {
		b.WriteString(r.TapeLine(l) + "\n")
	}
	b.WriteString("\n" + t.Hint.Render(p.FormatSummary()+"  •  n/p page  •  esc close"))
	return b.String()
}
