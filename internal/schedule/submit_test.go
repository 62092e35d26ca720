package schedule

import (
	"testing"
)

func TestSubmitBatchAcceptsInWindowEntry(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "Panel wiring", Achieved: "Wired 6 panels"},
	}
	result := SubmitBatch(DefaultPeriods, entries, nil, at(10, 30))
	if len(result.Rejections) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejections)
	}
	if len(result.Accepted) != 1 || result.Accepted[0].PeriodLabel != "9am-12pm" {
		t.Fatalf("expected morning entry accepted, got %+v", result.Accepted)
	}
}

func TestSubmitBatchSkipsBlankEntries(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "  "},
		{PeriodLabel: "12pm-3pm"},
	}
	result := SubmitBatch(DefaultPeriods, entries, nil, at(12, 30))
	if len(result.Accepted) != 0 || len(result.Rejections) != 0 {
		t.Fatalf("blank entries are not submissions, got %+v", result)
	}
}

func TestSubmitBatchAlreadyExists(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "Panel wiring"},
	}
	submitted := map[string]bool{"9am-12pm": true}
	result := SubmitBatch(DefaultPeriods, entries, submitted, at(10, 0))
	if len(result.Accepted) != 0 || len(result.Rejections) != 1 {
		t.Fatalf("expected one rejection, got %+v", result)
	}
	if result.Rejections[0].Reason != ReasonAlreadyExists {
		t.Fatalf("expected already_exists, got %s", result.Rejections[0].Reason)
	}
}

func TestSubmitBatchOutsideWindow(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "Panel wiring"},
	}
	result := SubmitBatch(DefaultPeriods, entries, nil, at(12, 45))
	if len(result.Rejections) != 1 || result.Rejections[0].Reason != ReasonOutsideWindow {
		t.Fatalf("expected outside_window rejection, got %+v", result)
	}
}

func TestSubmitBatchCollectsAllRejections(t *testing.T) {
	// Three problem entries in one batch: rejections for every period are
	// collected, the batch is never short-circuited at the first failure.
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "Panel wiring"},   // window closed at 13:10
		{PeriodLabel: "12pm-3pm", Activity: "Cable pulling"},  // already submitted
		{PeriodLabel: "3pm-6pm", Activity: "Lift maintenance"}, // future period, window not open
	}
	submitted := map[string]bool{"12pm-3pm": true}
	result := SubmitBatch(DefaultPeriods, entries, submitted, at(13, 10))
	if len(result.Rejections) != 3 {
		t.Fatalf("expected three rejections, got %d: %+v", len(result.Rejections), result.Rejections)
	}
	byLabel := map[string]RejectionReason{}
	for _, r := range result.Rejections {
		byLabel[r.PeriodLabel] = r.Reason
	}
	if byLabel["9am-12pm"] != ReasonOutsideWindow {
		t.Fatalf("morning: got %s, want outside_window", byLabel["9am-12pm"])
	}
	if byLabel["12pm-3pm"] != ReasonAlreadyExists {
		t.Fatalf("afternoon: got %s, want already_exists", byLabel["12pm-3pm"])
	}
	if byLabel["3pm-6pm"] != ReasonOutsideWindow {
		t.Fatalf("evening: got %s, want outside_window", byLabel["3pm-6pm"])
	}
}

func TestSubmitBatchValidationFailure(t *testing.T) {
	entries := []Entry{
		{
			PeriodLabel: "12pm-3pm",
			Activity:    "Transformer hookup",
			Problem:     ProblemReport{Resolved: ProblemResolvedYes},
		},
	}
	result := SubmitBatch(DefaultPeriods, entries, nil, at(13, 0))
	if len(result.Rejections) != 1 {
		t.Fatalf("expected one rejection, got %+v", result)
	}
	rej := result.Rejections[0]
	if rej.Reason != ReasonValidationFailed {
		t.Fatalf("expected validation_failed, got %s", rej.Reason)
	}
	if len(rej.Violations) != 2 {
		t.Fatalf("expected two violations attached, got %+v", rej.Violations)
	}
}

func TestSubmitBatchAlreadyExistsTakesPrecedenceOverWindow(t *testing.T) {
	// Checks run in order per period; a period that is both submitted and
	// out of window reports already_exists.
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "Panel wiring"},
	}
	submitted := map[string]bool{"9am-12pm": true}
	result := SubmitBatch(DefaultPeriods, entries, submitted, at(17, 0))
	if len(result.Rejections) != 1 || result.Rejections[0].Reason != ReasonAlreadyExists {
		t.Fatalf("expected already_exists, got %+v", result.Rejections)
	}
}

func TestSubmitBatchGraceWindowAccepts(t *testing.T) {
	entries := []Entry{
		{PeriodLabel: "9am-12pm", Activity: "Panel wiring", Achieved: "Done"},
	}
	result := SubmitBatch(DefaultPeriods, entries, nil, at(12, 30))
	if len(result.Accepted) != 1 {
		t.Fatalf("12:30 is inside the grace window, got %+v", result)
	}
}
