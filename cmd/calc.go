package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/folio-term/folio/internal/calc"
	"github.com/folio-term/folio/internal/db"
	"github.com/folio-term/folio/internal/utils"
)

var (
	calcFormat  string
	calcTape    bool
	calcNoColor bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <keys...>",
	Short: "Feed keys to a fresh calculator and print its display",
	Long: `Keys are typed in order, exactly as on the calculator keypad.
Words MC, MR, M+, M- and CE press the memory and clear-entry keys;
C or esc clears everything; = or enter calculates.

Examples:
	folio calc 5+3=                  # 8
	folio calc 5 + 3 - 2 =           # 6, chained
	folio calc 10 M+ C 4 x MR =      # 40
	folio calc --tape 8/0= C 2*3=    # show each resolved operation
	folio calc --format csv 2*3=     # the tape as CSV
	folio calc -- -5+2=              # use -- before a leading minus`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := utils.ParseFormat(calcFormat)
		if err != nil {
			return err
		}

		c := calc.New()
		results := feedCalculator(c, args)

		out := utils.CalcOutput{
			Input:   strings.Join(args, " "),
			Display: c.Entry(),
			Label:   c.Label(),
			Memory:  c.Memory(),
		}
		if calcTape || format == utils.FormatCSV {
			out.Tape, err = tapeResults(cmd.Context(), results)
			if err != nil {
				return err
			}
		}

		rc := utils.DefaultRenderConfig()
		rc.Format = format
		rc.Color = !calcNoColor
		s, err := utils.NewRenderer(rc).RenderCalc(out)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
		return nil
	},
}

// feedCalculator presses keys in order and returns every resolved operation.
func feedCalculator(c *calc.Calculator, args []string) []calc.Result {
	var results []calc.Result
	for _, a := range args {
		switch strings.ToUpper(a) {
		case "MC":
			c.MemoryClear()
		case "MR":
			c.MemoryRecall()
		case "M+":
			c.MemoryAdd()
		case "M-":
			c.MemorySubtract()
		case "CE":
			c.ClearEntry()
		case "C", "ESC":
			c.ClearAll()
		case "ENTER":
			results = append(results, c.Feed("enter")...)
		default:
			results = append(results, c.Feed(strings.NewReplacer("x", "*", "X", "*").Replace(a))...)
		}
	}
	return results
}

// tapeResults writes results to a session tape and reads them back.
func tapeResults(ctx context.Context, results []calc.Result) ([]db.Line, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dbh, err := db.Open()
	if err != nil {
		return nil, err
	}
	defer dbh.Close()

	id := uuid.NewString()
	for _, r := range results {
		line := db.Line{WidgetID: id, Kind: db.KindCalc, Expr: r.Expr, Result: r.Value, Failed: r.Failed}
		if err := db.Record(ctx, dbh, &line); err != nil {
			return nil, err
		}
	}
	return db.ByWidget(ctx, dbh, id)
}

func init() {
	calcCmd.Flags().StringVar(&calcFormat, "format", "default", "Output format: default, json, csv, compact, quiet")
	calcCmd.Flags().BoolVar(&calcTape, "tape", false, "Print every resolved operation")
	calcCmd.Flags().BoolVar(&calcNoColor, "no-color", false, "Disable colored output")
}
