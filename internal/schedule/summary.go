package schedule

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// summaryMaxLen is the character count above which the daily roll-up
	// switches to the truncated per-session form. The roll-up is a display
	// summary and lossy by design above this threshold; the per-entry
	// achieved text is the durable record.
	summaryMaxLen = 500
	// sessionSnippetLen bounds each session's contribution in the truncated
	// form, in characters.
	sessionSnippetLen = 100
)

// DailyAchievement rolls the day's per-session achievement text into one
// summary string: non-empty achievements, trimmed, joined with ". ". When the
// joined text exceeds 500 characters it falls back to per-session markers,
// "Session {n}: {first 100 chars}", joined with " | ". Session numbers follow
// each entry's position in the day's ordered entry list, so they stay stable
// when a middle session is empty.
func DailyAchievement(entries []Entry) string {
	var parts []string
	for _, e := range entries {
		if achieved := strings.TrimSpace(e.Achieved); achieved != "" {
			parts = append(parts, achieved)
		}
	}
	full := strings.Join(parts, ". ")
	if utf8.RuneCountInString(full) <= summaryMaxLen {
		return full
	}

	var marked []string
	for i, e := range entries {
		achieved := strings.TrimSpace(e.Achieved)
		if achieved == "" {
			continue
		}
		// Both limits count characters, not bytes: cutting inside a
		// multi-byte rune would persist invalid UTF-8.
		if utf8.RuneCountInString(achieved) > sessionSnippetLen {
			achieved = string([]rune(achieved)[:sessionSnippetLen]) + "..."
		}
		marked = append(marked, fmt.Sprintf("Session %d: %s", i+1, achieved))
	}
	return strings.Join(marked, " | ")
}
