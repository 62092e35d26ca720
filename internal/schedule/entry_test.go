package schedule

import "testing"

func TestValidateEntryBlankActivitySkipsAllChecks(t *testing.T) {
	entry := Entry{
		PeriodLabel: "9am-12pm",
		Activity:    "   ",
		Problem:     ProblemReport{Resolved: ProblemResolvedYes},
	}
	if violations := ValidateEntry(entry); len(violations) != 0 {
		t.Fatalf("blank activity must skip validation, got %d violations", len(violations))
	}
}

func TestValidateEntryResolvedProblemRequiresTimes(t *testing.T) {
	entry := Entry{
		PeriodLabel: "9am-12pm",
		Activity:    "Cable routing on level 3",
		Problem: ProblemReport{
			Description: "Conduit blocked",
			Resolved:    ProblemResolvedYes,
			EndTime:     "11:30",
		},
	}
	violations := ValidateEntry(entry)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d: %+v", len(violations), violations)
	}
	if violations[0].Field != "problemStartTime" {
		t.Fatalf("expected problemStartTime violation, got %s", violations[0].Field)
	}
}

func TestValidateEntryBothTimesMissing(t *testing.T) {
	entry := Entry{
		Activity: "Generator inspection",
		Problem:  ProblemReport{Resolved: ProblemResolvedYes},
	}
	violations := ValidateEntry(entry)
	if len(violations) != 2 {
		t.Fatalf("expected two violations, got %d: %+v", len(violations), violations)
	}
	if violations[0].Field != "problemStartTime" || violations[1].Field != "problemEndTime" {
		t.Fatalf("unexpected violation fields: %+v", violations)
	}
}

func TestValidateEntryOnlineSupportFields(t *testing.T) {
	entry := Entry{
		Activity: "Firmware update on PLC",
		Problem: ProblemReport{
			Resolved:       ProblemResolvedYes,
			StartTime:      "10:00",
			EndTime:        "10:40",
			SupportProblem: "PLC would not enter bootloader",
			SupportStart:   "10:10",
		},
	}
	violations := ValidateEntry(entry)
	if len(violations) != 2 {
		t.Fatalf("expected two violations, got %d: %+v", len(violations), violations)
	}
	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	if !fields["onlineSupportEnd"] || !fields["onlineSupportEngineer"] {
		t.Fatalf("expected onlineSupportEnd and onlineSupportEngineer, got %+v", violations)
	}
}

func TestValidateCorrectionRejectsBlankActivity(t *testing.T) {
	// On the edit path a blank activity is a violation, not a skip: it
	// would strand a persisted report with a stale problem block that
	// submission-time validation can never see again.
	entry := Entry{
		PeriodLabel: "9am-12pm",
		Activity:    "   ",
		Problem:     ProblemReport{Resolved: ProblemResolvedYes},
	}
	violations := ValidateCorrection(entry)
	if len(violations) != 1 || violations[0].Field != "hourlyActivity" {
		t.Fatalf("expected single hourlyActivity violation, got %+v", violations)
	}
}

func TestValidateCorrectionRunsProblemChecks(t *testing.T) {
	entry := Entry{
		PeriodLabel: "9am-12pm",
		Activity:    "Switchgear testing",
		Problem:     ProblemReport{Resolved: ProblemResolvedYes},
	}
	violations := ValidateCorrection(entry)
	if len(violations) != 2 {
		t.Fatalf("expected problem time violations, got %+v", violations)
	}
	if violations[0].Field != "problemStartTime" || violations[1].Field != "problemEndTime" {
		t.Fatalf("unexpected violation fields: %+v", violations)
	}
}

func TestValidateEntryUnresolvedProblemNeedsNothing(t *testing.T) {
	entry := Entry{
		Activity: "Trenching for feeder cable",
		Problem: ProblemReport{
			Description: "Water ingress in trench",
			Resolved:    ProblemResolvedNo,
		},
	}
	if violations := ValidateEntry(entry); len(violations) != 0 {
		t.Fatalf("unresolved problem must not require times, got %+v", violations)
	}
}
