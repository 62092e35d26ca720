package schedule

import "time"

// Status is the derived lifecycle state of a period at one evaluation
// instant. It is never persisted; callers recompute it from the current time
// and the submitted-report lookup.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSubmitted Status = "submitted"
	StatusMissed    Status = "missed"
)

// SessionState pairs a period with its derived status. A submitted period may
// still carry CanEdit while the trailing grace interval is open; it never
// regresses to any other status within the same day.
type SessionState struct {
	Period  Period
	Status  Status
	CanEdit bool
}

// ComputeStatuses derives the state of every period, in the fixed order given
// by periods. submitted is keyed by period label. Pure: identical inputs
// always yield identical output.
func ComputeStatuses(periods []Period, submitted map[string]bool, now time.Time) []SessionState {
	states := make([]SessionState, len(periods))
	for i, p := range periods {
		state := SessionState{Period: p}
		switch {
		case submitted[p.Label]:
			state.Status = StatusSubmitted
			state.CanEdit = WithinEditingWindow(p.StartHour, p.EndHour, now)
		case FuturePeriod(p.StartHour, now):
			state.Status = StatusPending
		case WithinEditingWindow(p.StartHour, p.EndHour, now):
			state.Status = StatusActive
			state.CanEdit = true
		default:
			state.Status = StatusMissed
		}
		states[i] = state
	}
	return states
}
