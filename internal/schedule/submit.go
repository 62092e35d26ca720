package schedule

import (
	"strings"
	"time"
)

// RejectionReason classifies why an entry was not accepted. All three are
// recoverable, user-facing conditions; the engine has no fatal error class.
type RejectionReason string

const (
	// ReasonAlreadyExists: a report for the period is already submitted;
	// corrections go through the edit path instead.
	ReasonAlreadyExists RejectionReason = "already_exists"
	// ReasonOutsideWindow: the period's editing window (including grace) is
	// closed.
	ReasonOutsideWindow RejectionReason = "outside_window"
	// ReasonValidationFailed: one or more conditional fields are missing,
	// listed in Violations.
	ReasonValidationFailed RejectionReason = "validation_failed"
)

// Rejection is one period's structured refusal.
type Rejection struct {
	PeriodLabel string
	Reason      RejectionReason
	Violations  []Violation
}

// BatchResult is the outcome of gating one day's entries. Accepted entries
// are validated and in-window; persisting them is the caller's job, the
// engine's contract ends here.
type BatchResult struct {
	Accepted   []Entry
	Rejections []Rejection
}

// SubmitBatch gates every entry with non-empty activity text against its
// period, in the fixed period order. Rejections are collected across all
// periods rather than stopping at the first failure; within one period the
// checks run in order (already submitted, window, validation) and only the
// first failing check is reported for it.
func SubmitBatch(periods []Period, entries []Entry, submitted map[string]bool, now time.Time) BatchResult {
	var result BatchResult
	for _, p := range periods {
		entry, ok := entryFor(entries, p.Label)
		if !ok || strings.TrimSpace(entry.Activity) == "" {
			continue
		}
		if submitted[p.Label] {
			result.Rejections = append(result.Rejections, Rejection{
				PeriodLabel: p.Label,
				Reason:      ReasonAlreadyExists,
			})
			continue
		}
		if !WithinEditingWindow(p.StartHour, p.EndHour, now) {
			result.Rejections = append(result.Rejections, Rejection{
				PeriodLabel: p.Label,
				Reason:      ReasonOutsideWindow,
			})
			continue
		}
		if violations := ValidateEntry(entry); len(violations) > 0 {
			result.Rejections = append(result.Rejections, Rejection{
				PeriodLabel: p.Label,
				Reason:      ReasonValidationFailed,
				Violations:  violations,
			})
			continue
		}
		result.Accepted = append(result.Accepted, entry)
	}
	return result
}

func entryFor(entries []Entry, label string) (Entry, bool) {
	for _, e := range entries {
		if e.PeriodLabel == label {
			return e, true
		}
	}
	return Entry{}, false
}
