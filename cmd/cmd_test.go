package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-term/folio/internal/calc"
	"github.com/folio-term/folio/internal/content"
	"github.com/folio-term/folio/internal/timer"
	"github.com/folio-term/folio/internal/utils"
)

// execute runs the root command with args against an empty config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.yaml")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	out, err := execute(t, "calc", "--no-color", "5", "+", "3", "-", "2", "=")
	require.NoError(t, err)
	assert.Equal(t, "8 - 2 =\n6\n", out)
}

func TestCalcCommandMemoryWords(t *testing.T) {
	out, err := execute(t, "calc", "--format", "quiet", "10", "M+", "C", "4", "x", "MR", "=")
	require.NoError(t, err)
	assert.Equal(t, "40\n", out)
}

func TestCalcCommandJSONWithTape(t *testing.T) {
	out, err := execute(t, "calc", "--format", "json", "--tape", "8/0=", "C", "2*3=")
	require.NoError(t, err)

	var got utils.CalcOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "6", got.Display)
	require.Len(t, got.Tape, 2)
	assert.Equal(t, "8 ÷ 0", got.Tape[0].Expr)
	assert.True(t, got.Tape[0].Failed)
	assert.Equal(t, "2 × 3", got.Tape[1].Expr)
	assert.Equal(t, got.Tape[0].WidgetID, got.Tape[1].WidgetID)
}

func TestCalcCommandRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "calc", "--format", "xml", "1")
	assert.Error(t, err)

	_, err = execute(t, "calc", "--format", "table", "1+1=")
	assert.ErrorContains(t, err, "not supported")
}

func TestCalcCommandCSVIsTheTape(t *testing.T) {
	out, err := execute(t, "calc", "--format", "csv", "2*3=", "C", "4+1=")
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, rows, 3)
	assert.Equal(t, "id,widget_id,kind,expr,result,failed,at", rows[0])
	assert.Contains(t, rows[1], ",calc,2 × 3,6,false,")
	assert.Contains(t, rows[2], ",calc,4 + 1,5,false,")
}

func TestCalcCommandQuietTape(t *testing.T) {
	out, err := execute(t, "calc", "--format", "quiet", "--tape", "8/0=", "C", "2*3=")
	require.NoError(t, err)
	assert.Equal(t, "Error\n6\n", out)
}

func TestFeedCalculatorClearEntry(t *testing.T) {
	c := calc.New()
	results := feedCalculator(c, []string{"12+", "99", "CE", "3", "enter"})
	require.Len(t, results, 1)
	assert.Equal(t, "12 + 3", results[0].Expr)
	assert.Equal(t, "15", c.Entry())
}

func TestProjectsCommand(t *testing.T) {
	out, err := execute(t, "projects", "--format", "quiet", "--section", "labs")
	require.NoError(t, err)
	assert.Equal(t, "lab1\nlab2\nlab3\nlab4\nlab5\nlab6\n", out)

	out, err = execute(t, "projects", "--format", "json")
	require.NoError(t, err)
	var got []content.Project
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 8)

	_, err = execute(t, "projects", "--section", "nowhere")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "folio "))
}

func TestCountdownFromArgs(t *testing.T) {
	cases := []struct {
		args []string
		want int
	}{
		{nil, 900},
		{[]string{"90s"}, 90},
		{[]string{"1h2m3s"}, 3723},
		{[]string{"5", "0"}, 300},
		{[]string{"1", "30", "0"}, 5400},
		{[]string{"0", "75", "abc"}, 59 * 60},
	}
	for _, tc := range cases {
		cd, err := countdownFromArgs(tc.args, 900, nil)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, cd.Total(), tc.args)
	}

	_, err := countdownFromArgs([]string{"soon"}, 900, nil)
	assert.Error(t, err)
	_, err = countdownFromArgs([]string{"48h"}, 900, nil)
	assert.Error(t, err)
}

type countingAlarm struct{ rings int }

func (a *countingAlarm) Ring() { a.rings++ }

func TestRunCountdownCompletes(t *testing.T) {
	alarm := &countingAlarm{}
	cd := timer.New(3, alarm)
	var out bytes.Buffer

	done := runCountdown(context.Background(), &out, cd, time.Millisecond, false)
	assert.True(t, done)
	assert.Equal(t, 1, alarm.rings)
	assert.Contains(t, out.String(), "00:00:02")
	assert.True(t, strings.HasSuffix(out.String(), "\r00:00:00  Time's up!    \n"))
}

func TestRunCountdownQuiet(t *testing.T) {
	var out bytes.Buffer
	done := runCountdown(context.Background(), &out, timer.New(1, nil), time.Millisecond, true)
	assert.True(t, done)
	assert.Equal(t, "Time's up!\n", out.String())
}

func TestRunCountdownCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cd := timer.New(60, nil)
	var out bytes.Buffer

	assert.False(t, runCountdown(ctx, &out, cd, time.Hour, true))
	assert.Equal(t, timer.StatusPaused, cd.Status())
	assert.Equal(t, 60, cd.Remaining())
}

func TestRunCountdownNothingToDo(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, runCountdown(context.Background(), &out, timer.New(0, nil), time.Millisecond, false))
	assert.Equal(t, "Nothing to count down.\n", out.String())
}
