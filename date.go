package tickchart

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

const dateLabelFormat = "02.01"

var dateConfig = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
	TimeFormats: []string{
		"2006-01-02",
		"2006-1-2",
		"02.01.2006",
		"2.1.2006",
		"2006/01/02",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
	},
}

// ParseDate reads a date written in one of the accepted layouts. Dates
// without an offset are read in UTC, the others keep their own offset so the
// label shows the day as written.
func ParseDate(str string) (time.Time, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, false
	}
	t, err := dateConfig.Parse(str)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
