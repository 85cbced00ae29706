package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-term/folio/internal/notify"
	"github.com/folio-term/folio/internal/schedule"
	"github.com/folio-term/folio/internal/sound"
	"github.com/folio-term/folio/internal/timer"
)

var (
	timerNoSound bool
	timerQuiet   bool
)

// timerCmd runs a countdown in the terminal until it completes or is interrupted.
var timerCmd = &cobra.Command{
	Use:   "timer [duration | minutes seconds | hours minutes seconds]",
	Short: "Run a countdown timer",
	Long: `Examples:
	folio timer                  # configured default (15m)
	folio timer 90s              # Go duration
	folio timer 5 0              # 5 minutes
	folio timer 1 30 0           # 1 hour 30 minutes
	folio timer 25m --no-sound   # silent`,
	Args: cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var alarm timer.Alarm
		if !timerNoSound && cfg.Timer.Sound {
			alarm = sound.NewPlayer(sound.Tone{
				Frequency: cfg.Tone.Frequency,
				Duration:  cfg.Tone.Duration,
				Gain:      cfg.Tone.Gain,
			})
		}

		cd, err := countdownFromArgs(args, cfg.TimerSeconds(), alarm)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		done := runCountdown(ctx, cmd.OutOrStdout(), cd, time.Second, timerQuiet)
		if !done {
			return nil
		}
		if cfg.Notifications.Enabled {
			if err := notify.TimerDone(cd.Total()); err != nil {
				slog.Warn("timer notification", "err", err)
			}
		}
		if alarm != nil {
			// Let the tone finish before the process exits.
			select {
			case <-ctx.Done():
			case <-time.After(cfg.Tone.Duration):
			}
		}
		return nil
	},
}

// countdownFromArgs builds a countdown from the command arguments. One
// argument is a Go duration; two are minutes and seconds; three are hours,
// minutes and seconds.
func countdownFromArgs(args []string, def int, alarm timer.Alarm) (*timer.Countdown, error) {
	cd := timer.New(def, alarm)
	var h, m, s int
	switch len(args) {
	case 0:
		return cd, nil
	case 1:
		d, err := time.ParseDuration(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", args[0], err)
		}
		if d < 0 || d > timer.MaxSeconds*time.Second {
			return nil, fmt.Errorf("duration %s out of range", d)
		}
		h, m, s = timer.Split(int(d / time.Second))
	case 2:
		m, s = timer.ParseField(args[0]), timer.ParseField(args[1])
	default:
		h, m, s = timer.ParseField(args[0]), timer.ParseField(args[1]), timer.ParseField(args[2])
	}
	if err := cd.Configure(h, m, s); err != nil {
		return nil, err
	}
	return cd, nil
}

// runCountdown ticks cd every interval, redrawing the clock in place, and
// reports whether it ran to completion.
func runCountdown(ctx context.Context, w io.Writer, cd *timer.Countdown, interval time.Duration, quiet bool) bool {
	h, err := cd.Start()
	if err != nil || h == 0 {
		fmt.Fprintln(w, "Nothing to count down.")
		return false
	}

	draw := func() {
		if !quiet {
			fmt.Fprintf(w, "\r%s  %-14s", cd.Clock(), cd.Status())
		}
	}
	draw()

	done := false
	schedule.Every(ctx, interval, func() bool {
		switch cd.Tick(h) {
		case timer.EventTick:
			draw()
			return true
		case timer.EventComplete:
			done = true
		}
		return false
	})

	if !done {
		cd.Pause()
		if !quiet {
			fmt.Fprintf(w, "\r%s  %-14s\n", cd.Clock(), cd.Status())
		}
		return false
	}
	if quiet {
		fmt.Fprintln(w, cd.Status())
	} else {
		fmt.Fprintf(w, "\r%s  %-14s\n", cd.Clock(), cd.Status())
	}
	return true
}

func init() {
	timerCmd.Flags().BoolVar(&timerNoSound, "no-sound", false, "Do not play the completion tone")
	timerCmd.Flags().BoolVarP(&timerQuiet, "quiet", "q", false, "Only print when the countdown finishes")
}
