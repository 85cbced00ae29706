package timer

import (
	"fmt"
	"strings"
)

// FormatClock converts a number of seconds into HH:MM:SS.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}

// ParseField reads the leading integer of an input field. Blank or
// non-numeric input is zero.
func ParseField(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > MaxSeconds {
			n = MaxSeconds
		}
	}
	if neg {
		return -n
	}
	return n
}

// Split breaks total seconds into hours, minutes and seconds.
func Split(total int) (hours, minutes, seconds int) {
	if total < 0 {
		total = 0
	}
	return total / 3600, (total % 3600) / 60, total % 60
}
