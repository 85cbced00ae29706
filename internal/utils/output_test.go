package utils

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-term/folio/internal/content"
	"github.com/folio-term/folio/internal/db"
)

func plain(format OutputFormat) *Renderer {
	return NewRenderer(&RenderConfig{Format: format, Width: 40, Color: false, Location: time.UTC})
}

var sampleProjects = []content.Project{
	{ID: "calculator", Section: "projects", Widget: content.WidgetCalculator, Title: "Modern Calculator", Text: "Adds things.", Details: []string{"Memory"}},
	{ID: "lab1", Section: "labs", Title: "Activity 1, Basics", Text: "HTML."},
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDefault, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestRenderProjectsDefault(t *testing.T) {
	out, err := plain(FormatDefault).RenderProjects(sampleProjects)
	require.NoError(t, err)
	assert.Contains(t, out, "Modern Calculator  live: calculator")
	assert.Contains(t, out, "Key Features:")
	assert.Contains(t, out, "    • Memory")
}

func TestRenderProjectsCSVEscapes(t *testing.T) {
	out, err := plain(FormatCSV).RenderProjects(sampleProjects)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `lab1,labs,,"Activity 1, Basics"`, lines[2])
}

func TestRenderProjectsJSON(t *testing.T) {
	out, err := plain(FormatJSON).RenderProjects(sampleProjects)
	require.NoError(t, err)
	var got []content.Project
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sampleProjects, got)
}

func TestRenderTape(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	lines := []db.Line{
		{ID: 2, Kind: db.KindTimer, Expr: "00:01:30", Result: "Time's up!", At: at},
		{ID: 1, Kind: db.KindCalc, Expr: "8 ÷ 0", Result: "Error", Failed: true, At: at},
	}
	out, err := plain(FormatDefault).RenderTape(lines)
	require.NoError(t, err)
	assert.Equal(t, "09:30:00 timer 00:01:30 → Time's up!\n09:30:00 calc  8 ÷ 0 = Error\n", out)

	quiet, err := plain(FormatQuiet).RenderTape(lines)
	require.NoError(t, err)
	assert.Equal(t, "Time's up!\nError\n", quiet)
}

func TestRenderCalc(t *testing.T) {
	out, err := plain(FormatDefault).RenderCalc(CalcOutput{Input: "5+3-2=", Display: "6", Label: "8 - 2 ="})
	require.NoError(t, err)
	assert.Equal(t, "8 - 2 =\n6\n", out)

	quiet, err := plain(FormatQuiet).RenderCalc(CalcOutput{Display: "6"})
	require.NoError(t, err)
	assert.Equal(t, "6\n", quiet)
}

func TestRenderCalcWithTape(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	out := CalcOutput{Display: "6", Tape: []db.Line{
		{ID: 1, WidgetID: "w", Kind: db.KindCalc, Expr: "8 ÷ 0", Result: "Error", Failed: true, At: at},
		{ID: 2, WidgetID: "w", Kind: db.KindCalc, Expr: "2 × 3", Result: "6", At: at},
	}}

	csv, err := plain(FormatCSV).RenderCalc(out)
	require.NoError(t, err)
	assert.Equal(t, "id,widget_id,kind,expr,result,failed,at\n"+
		"1,w,calc,8 ÷ 0,Error,true,2026-03-01T09:30:00Z\n"+
		"2,w,calc,2 × 3,6,false,2026-03-01T09:30:00Z\n", csv)

	quiet, err := plain(FormatQuiet).RenderCalc(out)
	require.NoError(t, err)
	assert.Equal(t, "Error\n6\n", quiet)

	compact, err := plain(FormatCompact).RenderCalc(out)
	require.NoError(t, err)
	assert.Equal(t, "6\n", compact)

	def, err := plain(FormatDefault).RenderCalc(out)
	require.NoError(t, err)
	assert.Contains(t, def, "09:30:00 calc  2 × 3 = 6\n")
}

func TestRenderCalcRejectsTable(t *testing.T) {
	_, err := plain(FormatTable).RenderCalc(CalcOutput{Display: "6"})
	assert.ErrorContains(t, err, "not supported")
}
