package views

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// parseDay accepts a bare date or a full timestamp, as the date columns hold
// either.
func parseDay(s string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders YYYY.MM.DD. Unparseable input comes back unchanged.
func FormatDate(s string) string {
	t, ok := parseDay(s)
	if !ok {
		return s
	}
	return t.Format("2006.01.02")
}

// DaysSince counts whole days from start to now, so the start day itself
// is D+0.
func DaysSince(start string, now time.Time) (int, bool) {
	t, ok := parseDay(start)
	if !ok {
		return 0, false
	}
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24), true
}

func FormatDDay(start string, now time.Time) string {
	days, ok := DaysSince(start, now)
	if !ok {
		return ""
	}
	return fmt.Sprintf("D+%d일째", days)
}

// FormatWon groups thousands the way tag does and appends the currency.
func FormatWon(tag language.Tag, amount int) string {
	p := message.NewPrinter(tag)
	if tag == language.Korean {
		return p.Sprintf("%d원", amount)
	}
	return p.Sprintf("₩%d", amount)
}
