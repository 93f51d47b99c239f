package render

import (
	"testing"
	"time"
)

func mark(s string) string { return "[" + s + "]" }

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{
			name:  "empty query returns text unchanged",
			text:  "John Doe",
			query: "",
			want:  "John Doe",
		},
		{
			name:  "empty text returns empty",
			text:  "",
			query: "john",
			want:  "",
		},
		{
			name:  "case-insensitive match keeps original casing",
			text:  "John Doe",
			query: "john",
			want:  "[John] Doe",
		},
		{
			// Matching is leftmost and non-overlapping, so "banana"
			// wraps its first "ana" and skips the overlapping one.
			name:  "multiple occurrences all wrapped",
			text:  "ana banana",
			query: "ana",
			want:  "[ana] b[ana]na",
		},
		{
			name:  "no match returns text unchanged",
			text:  "Jane Smith",
			query: "xyz",
			want:  "Jane Smith",
		},
		{
			name:  "regex metacharacters are literal",
			text:  "call +1(234)",
			query: "+1(234)",
			want:  "call [+1(234)]",
		},
		{
			name:  "dot does not match any character",
			text:  "abc a.c",
			query: "a.c",
			want:  "abc [a.c]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.text, tt.query, mark)
			if got != tt.want {
				t.Errorf("Highlight(%q, %q) = %q, want %q", tt.text, tt.query, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "01 January 1990" {
		t.Errorf("FormatDate = %q, want %q", got, "01 January 1990")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		limit int
		want  string
	}{
		{"shorter than limit", "abc", 5, "abc"},
		{"exactly limit", "abcde", 5, "abcde"},
		{"longer than limit", "abcdefgh", 5, "abcde..."},
		{"zero limit returns unchanged", "abcdefgh", 0, "abcdefgh"},
		{"rune safe", "héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.limit, "..."); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.limit, got, tt.want)
			}
		})
	}
}
