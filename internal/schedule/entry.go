package schedule

import "strings"

// Entry is one period's draft report as the caller holds it before
// submission. Field normalization from the wire format happens at the API
// boundary; the engine only ever sees this canonical shape.
type Entry struct {
	PeriodLabel string
	Activity    string // what was worked on during the session
	Achieved    string // what was completed during the session
	Problem     ProblemReport
}

// ProblemReport is the optional problem block of an entry. All fields are
// free text; the time fields are required only once the problem is flagged
// resolved, and the online-support fields only when a support problem is
// named.
type ProblemReport struct {
	Description     string
	Resolved        string // "Yes" / "No"
	StartTime       string
	EndTime         string
	SupportProblem  string // which problem needed online support
	SupportStart    string
	SupportEnd      string
	SupportEngineer string
}

// Violation identifies one missing conditional field.
type Violation struct {
	Field   string
	Message string
}

// ValidateEntry checks the conditional problem-report fields. An entry with
// blank activity text is simply not submitted, so it produces no violations.
func ValidateEntry(e Entry) []Violation {
	if strings.TrimSpace(e.Activity) == "" {
		return nil
	}

	var violations []Violation
	if e.Problem.Resolved == ProblemResolvedYes {
		if strings.TrimSpace(e.Problem.StartTime) == "" {
			violations = append(violations, Violation{
				Field:   "problemStartTime",
				Message: "problem start time is required when the problem is resolved",
			})
		}
		if strings.TrimSpace(e.Problem.EndTime) == "" {
			violations = append(violations, Violation{
				Field:   "problemEndTime",
				Message: "problem end time is required when the problem is resolved",
			})
		}
		if strings.TrimSpace(e.Problem.SupportProblem) != "" {
			if strings.TrimSpace(e.Problem.SupportStart) == "" {
				violations = append(violations, Violation{
					Field:   "onlineSupportStart",
					Message: "online support start time is required",
				})
			}
			if strings.TrimSpace(e.Problem.SupportEnd) == "" {
				violations = append(violations, Violation{
					Field:   "onlineSupportEnd",
					Message: "online support end time is required",
				})
			}
			if strings.TrimSpace(e.Problem.SupportEngineer) == "" {
				violations = append(violations, Violation{
					Field:   "onlineSupportEngineer",
					Message: "supporting engineer name is required",
				})
			}
		}
	}
	return violations
}

// ValidateCorrection checks an edited, already-persisted report. Unlike a
// fresh submission, where a blank entry is simply not submitted, a correction
// must keep its activity text: blanking it would leave a stored report no
// create path could produce, with ValidateEntry short-circuiting past a stale
// problem block.
func ValidateCorrection(e Entry) []Violation {
	if strings.TrimSpace(e.Activity) == "" {
		return []Violation{{
			Field:   "hourlyActivity",
			Message: "hourly activity cannot be blank on a submitted report",
		}}
	}
	return ValidateEntry(e)
}

// Problem resolution flags as they arrive from the report form.
const (
	ProblemResolvedYes = "Yes"
	ProblemResolvedNo  = "No"
)
