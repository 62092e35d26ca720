package schedule

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDailyAchievementJoinsShortEntries(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Achieved: "Fixed sensor A"},
		{PeriodLabel: "12pm-3pm", Achieved: "Calibrated B"},
	}
	got := DailyAchievement(entries)
	want := "Fixed sensor A. Calibrated B"
	if got != want {
		t.Fatalf("DailyAchievement = %q, want %q", got, want)
	}
}

func TestDailyAchievementTrimsAndSkipsEmpty(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Achieved: "  Mounted junction boxes  "},
		{PeriodLabel: "12pm-3pm", Achieved: ""},
		{PeriodLabel: "3pm-6pm", Achieved: "Tested circuits"},
	}
	got := DailyAchievement(entries)
	want := "Mounted junction boxes. Tested circuits"
	if got != want {
		t.Fatalf("DailyAchievement = %q, want %q", got, want)
	}
}

func TestDailyAchievementEmptyDay(t *testing.T) {
	if got := DailyAchievement(nil); got != "" {
		t.Fatalf("empty day should produce empty summary, got %q", got)
	}
}

func TestDailyAchievementExactly500NotTruncated(t *testing.T) {
	// 500 characters is the boundary; only summaries strictly longer than
	// that switch to the truncated form.
	text := strings.Repeat("a", 500)
	got := DailyAchievement([]Entry{{PeriodLabel: "9am-12pm", Achieved: text}})
	if got != text {
		t.Fatalf("summary of exactly 500 chars must not be truncated")
	}
}

func TestDailyAchievementTruncatesLongDay(t *testing.T) {
	long := strings.Repeat("x", 300)
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Achieved: long},
		{PeriodLabel: "12pm-3pm", Achieved: "short note"},
		{PeriodLabel: "3pm-6pm", Achieved: strings.Repeat("y", 250)},
	}
	got := DailyAchievement(entries)
	parts := strings.Split(got, " | ")
	if len(parts) != 3 {
		t.Fatalf("expected three session markers, got %d in %q", len(parts), got)
	}
	if parts[0] != "Session 1: "+strings.Repeat("x", 100)+"..." {
		t.Fatalf("unexpected first marker: %q", parts[0])
	}
	if parts[1] != "Session 2: short note" {
		t.Fatalf("short sessions keep their full text: %q", parts[1])
	}
	if parts[2] != "Session 3: "+strings.Repeat("y", 100)+"..." {
		t.Fatalf("unexpected third marker: %q", parts[2])
	}
}

func TestDailyAchievementTruncatesOnCharacterBoundary(t *testing.T) {
	// A multi-byte character straddling the snippet limit must survive
	// whole; the summary is persisted and must stay valid UTF-8.
	achieved := strings.Repeat("a", 99) + "é" + strings.Repeat("b", 600)
	got := DailyAchievement([]Entry{{PeriodLabel: "9am-12pm", Achieved: achieved}})
	if !utf8.ValidString(got) {
		t.Fatalf("summary contains invalid UTF-8: %q", got)
	}
	want := "Session 1: " + strings.Repeat("a", 99) + "é..."
	if got != want {
		t.Fatalf("DailyAchievement = %q, want %q", got, want)
	}
}

func TestDailyAchievementThresholdCountsCharacters(t *testing.T) {
	// 500 two-byte characters are 1000 bytes but exactly at the character
	// threshold, so the summary keeps its full form.
	text := strings.Repeat("é", 500)
	if got := DailyAchievement([]Entry{{PeriodLabel: "9am-12pm", Achieved: text}}); got != text {
		t.Fatalf("500-character summary must not be truncated, got %q", got)
	}
}

func TestDailyAchievementSessionNumbersStayStable(t *testing.T) {
	// A blank middle session does not renumber the one after it.
	long := strings.Repeat("z", 600)
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Achieved: long},
		{PeriodLabel: "12pm-3pm", Achieved: ""},
		{PeriodLabel: "3pm-6pm", Achieved: "Final checks"},
	}
	got := DailyAchievement(entries)
	if !strings.Contains(got, "Session 3: Final checks") {
		t.Fatalf("expected evening entry labeled Session 3, got %q", got)
	}
	if strings.Contains(got, "Session 2:") {
		t.Fatalf("blank session must not appear, got %q", got)
	}
}
