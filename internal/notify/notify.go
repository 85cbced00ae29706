package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/folio-term/folio/internal/timer"
)

var send = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Info(title, message string) error {
	return send(title, message)
}

// TimerDone notifies that a countdown of total seconds has finished.
func TimerDone(total int) error {
	title, msg := FormatTimerDone(total)
	return Info(title, msg)
}

func FormatTimerDone(total int) (string, string) {
	title := timer.StatusDone.String()
	msg := fmt.Sprintf("Your %s countdown has finished.", timer.FormatClock(total))
	return title, msg
}
