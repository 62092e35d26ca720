package schedule

// Period is one fixed reporting window within the working day.
// Periods are defined at startup and never mutated.
type Period struct {
	Label     string `json:"label"`     // display label, e.g. "9am-12pm"
	Name      string `json:"name"`      // session name, e.g. "Morning Session"
	StartHour int    `json:"startHour"` // 0-23
	EndHour   int    `json:"endHour"`   // 0-23, always > StartHour
}

// DefaultPeriods covers the 9am-6pm working day in three contiguous sessions.
var DefaultPeriods = []Period{
	{Label: "9am-12pm", Name: "Morning Session", StartHour: 9, EndHour: 12},
	{Label: "12pm-3pm", Name: "Afternoon Session", StartHour: 12, EndHour: 15},
	{Label: "3pm-6pm", Name: "Evening Session", StartHour: 15, EndHour: 18},
}

// PeriodByLabel looks a period up in the given definitions.
func PeriodByLabel(periods []Period, label string) (Period, bool) {
	for _, p := range periods {
		if p.Label == label {
			return p, true
		}
	}
	return Period{}, false
}
