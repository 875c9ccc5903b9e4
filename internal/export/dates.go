package export

import (
	"regexp"
	"time"
)

var yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// dateLayouts are tried in order when reformatting a user-entered date.
var dateLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006-01-02",
	time.RFC3339,
}

// FormatDate reformats a user-entered date string to "Jan 2006" on a best
// effort basis. Unparsable strings pass through unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	if yearMonthRe.MatchString(s) {
		if t, err := time.Parse("2006-01", s); err == nil {
			return t.Format("Jan 2006")
		}
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}
