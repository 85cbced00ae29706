package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-term/folio/internal/content"
	"github.com/folio-term/folio/internal/db"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatCompact, FormatQuiet:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (default|table|json|csv|compact|quiet)", s)
}

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format   OutputFormat
	Width    int
	Color    bool
	Location *time.Location
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}

	return &RenderConfig{
		Format:   FormatDefault,
		Width:    width,
		Color:    true,
		Location: time.Local,
	}
}

// CalcOutput is the outcome of feeding keys to a calculator from the CLI.
type CalcOutput struct {
	Input   string    `json:"input"`
	Display string    `json:"display"`
	Label   string    `json:"label,omitempty"`
	Memory  float64   `json:"memory"`
	Tape    []db.Line `json:"tape,omitempty"`
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	ID        lipgloss.Style
	Time      lipgloss.Style
	Kind      lipgloss.Style
	Widget    lipgloss.Style
	Text      lipgloss.Style
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	return &Renderer{
		config: config,
		styles: initStyles(config.Color),
	}
}

// initStyles initializes the style set
func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.ID = lipgloss.NewStyle().Faint(true)
		styles.Time = lipgloss.NewStyle().Faint(true)
		styles.Kind = lipgloss.NewStyle().Bold(true)
		styles.Widget = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		styles.Text = lipgloss.NewStyle()
		styles.Highlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	} else {
		// Monochrome styles
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.ID = lipgloss.NewStyle()
		styles.Time = lipgloss.NewStyle()
		styles.Kind = lipgloss.NewStyle().Bold(true)
		styles.Widget = lipgloss.NewStyle()
		styles.Text = lipgloss.NewStyle()
		styles.Highlight = lipgloss.NewStyle().Bold(true)
		styles.Success = lipgloss.NewStyle()
		styles.Error = lipgloss.NewStyle()
	}

	return styles
}

func (r *Renderer) separator() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120)))
}

// RenderProjects renders the project cards of the page.
func (r *Renderer) RenderProjects(projects []content.Project) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(projects)
	case FormatCSV:
		var b strings.Builder
		b.WriteString("id,section,widget,title\n")
		for _, p := range projects {
			row := []string{p.ID, p.Section, string(p.Widget), escapeCSV(p.Title)}
			b.WriteString(strings.Join(row, ",") + "\n")
		}
		return b.String(), nil
	case FormatTable:
		var b strings.Builder
		b.WriteString(strings.Join([]string{"ID", "SECTION", "WIDGET", "TITLE"}, "\t") + "\n")
		for _, p := range projects {
			widget := string(p.Widget)
			if widget == "" {
				widget = "-"
			}
			b.WriteString(strings.Join([]string{p.ID, p.Section, widget, p.Title}, "\t") + "\n")
		}
		return b.String(), nil
	case FormatCompact, FormatQuiet:
		var b strings.Builder
		for _, p := range projects {
			if r.config.Format == FormatQuiet {
				b.WriteString(p.ID + "\n")
				continue
			}
			line := fmt.Sprintf("%-12s %s", r.styles.ID.Render(p.ID), p.Title)
			if p.Widget != content.WidgetNone {
				line += " " + r.styles.Widget.Render("["+string(p.Widget)+"]")
			}
			b.WriteString(line + "\n")
		}
		return b.String(), nil
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Projects") + "\n")
	b.WriteString(r.separator() + "\n")
	for _, p := range projects {
		head := r.styles.Kind.Render(p.Title)
		if p.Widget != content.WidgetNone {
			head += "  " + r.styles.Widget.Render("live: "+string(p.Widget))
		}
		b.WriteString(head + "\n")
		b.WriteString(r.styles.Text.Render("  "+p.Text) + "\n")
		if len(p.Details) > 0 {
			b.WriteString(r.styles.Meta.Render("  "+p.DetailsHeading()) + "\n")
			for _, d := range p.Details {
				b.WriteString("    • " + d + "\n")
			}
		}
		b.WriteString(r.separator() + "\n")
	}
	return b.String(), nil
}

// RenderTape renders session tape lines.
func (r *Renderer) RenderTape(lines []db.Line) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(lines)
	case FormatCSV:
		var b strings.Builder
		b.WriteString("id,widget_id,kind,expr,result,failed,at\n")
		for _, l := range lines {
			row := []string{
				strconv.FormatInt(l.ID, 10), l.WidgetID, string(l.Kind),
				escapeCSV(l.Expr), escapeCSV(l.Result), strconv.FormatBool(l.Failed),
				l.At.Format(time.RFC3339),
			}
			b.WriteString(strings.Join(row, ",") + "\n")
		}
		return b.String(), nil
	case FormatQuiet:
		var b strings.Builder
		for _, l := range lines {
			b.WriteString(l.Result + "\n")
		}
		return b.String(), nil
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(r.TapeLine(l) + "\n")
	}
	return b.String(), nil
}

// TapeLine renders one tape line as "15:04:05 calc 5 + 3 = 8".
func (r *Renderer) TapeLine(l db.Line) string {
	result := r.styles.Success.Render(l.Result)
	if l.Failed {
		result = r.styles.Error.Render(l.Result)
	}
	sep := "="
	if l.Kind == db.KindTimer {
		sep = "→"
	}
	return fmt.Sprintf("%s %s %s %s %s",
		r.styles.Time.Render(l.At.In(r.config.Location).Format("15:04:05")),
		r.styles.Kind.Render(fmt.Sprintf("%-5s", l.Kind)),
		l.Expr, sep, result)
}

// RenderCalc renders the outcome of a CLI calculation. CSV output is the
// tape itself; quiet output lists tape results when a tape is present.
func (r *Renderer) RenderCalc(out CalcOutput) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(out)
	case FormatCSV:
		return r.RenderTape(out.Tape)
	case FormatQuiet:
		if len(out.Tape) > 0 {
			return r.RenderTape(out.Tape)
		}
		return out.Display + "\n", nil
	case FormatCompact:
		return out.Display + "\n", nil
	case FormatTable:
		return "", fmt.Errorf("format %q is not supported for calc", r.config.Format)
	}

	var b strings.Builder
	if out.Label != "" {
		b.WriteString(r.styles.Meta.Render(out.Label) + "\n")
	}
	if out.Display == "Error" {
		b.WriteString(r.styles.Error.Render(out.Display) + "\n")
	} else {
		b.WriteString(r.styles.Highlight.Render(out.Display) + "\n")
	}
	if len(out.Tape) > 0 {
		tape, err := r.RenderTape(out.Tape)
		if err != nil {
			return "", err
		}
		b.WriteString(r.separator() + "\n" + tape)
	}
	return b.String(), nil
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func escapeCSV(s string) string {
	if strings.Contains(s, ",") || strings.Contains(s, "\"") || strings.Contains(s, "\n") {
		s = strings.ReplaceAll(s, "\"", "\"\"")
		return "\"" + s + "\""
	}
	return s
}
