// Package render contains pure presentation helpers shared by the CLI
// and the TUI: search-match highlighting, date formatting, and
// truncation.
package render

import (
	"regexp"
	"time"
)

// dateLayout renders dates as "01 January 1990".
const dateLayout = "02 January 2006"

// FormatDate returns the roster's display form of a date of birth.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Highlight wraps every case-insensitive occurrence of query in text
// with mark. The query is treated as a literal string: regex
// metacharacters in user input never change the match. Empty query or
// text returns text unchanged.
func Highlight(text, query string, mark func(string) string) string {
	if query == "" || text == "" {
		return text
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, mark)
}

// Truncate shortens s to at most limit runes, appending trail when
// anything was cut. A limit of 0 or less returns s unchanged.
func Truncate(s string, limit int, trail string) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + trail
}
