package game

import (
	"fmt"
	"strings"
	"time"
)

// Date formats the source emits without a year; the season mapping supplies
// one. "_2" also accepts the double-space padding the grid sometimes uses
// for single-digit days.
var yearlessDateFormats = []string{"Jan _2", "January _2"}

// Date formats occasionally seen with an explicit year; the parsed year is
// kept as-is.
var datedFormats = []string{"01/02/2006", "2006-01-02", "02/01/2006", "01-02-2006"}

var timeFormats = []string{"3:04 PM", "3:04PM", "15:04", "3 PM", "3:04:05 PM"}

// parseGameDate parses the source's date text through the known formats.
// hasYear reports whether the matched format carried an explicit year.
func parseGameDate(text string) (parsed time.Time, hasYear bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false, fmt.Errorf("empty date")
	}
	for _, layout := range yearlessDateFormats {
		if t, err := time.Parse(layout, text); err == nil {
			return t, false, nil
		}
	}
	for _, layout := range datedFormats {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized date %q", text)
}

// parseGameTime parses the source's time text into an hour and minute.
// Input is upper-cased first so "9:15 pm" matches the AM/PM layouts.
func parseGameTime(text string) (hour, minute int, err error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return 0, 0, fmt.Errorf("empty time")
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("unrecognized time %q", text)
}
