package schedule

import "time"

// EditGraceMinutes extends editability past a period's nominal end, so a
// straggling submission shortly after a session closes is not locked out the
// instant the clock rolls over.
const EditGraceMinutes = 30

// WithinPeriod reports whether now falls inside the [startHour:00, endHour:00]
// window. The end boundary is included only at minute 0 exactly: a report at
// endHour:00 is still in-window, one at endHour:01 is not (it may still fall
// inside the editing grace, see WithinEditingWindow).
func WithinPeriod(startHour, endHour int, now time.Time) bool {
	hour, minute := now.Hour(), now.Minute()
	switch {
	case hour > startHour && hour < endHour:
		return true
	case hour == startHour:
		return true
	case hour == endHour && minute == 0:
		return true
	}
	return false
}

// WithinEditingWindow reports whether a report for the period may still be
// created or corrected: the period itself plus EditGraceMinutes past its end.
func WithinEditingWindow(startHour, endHour int, now time.Time) bool {
	if WithinPeriod(startHour, endHour, now) {
		return true
	}
	return now.Hour() == endHour && now.Minute() <= EditGraceMinutes
}

// FuturePeriod reports whether the period has not opened yet. The minute
// clause can never be true (minutes are non-negative) and changes no
// behavior; it is kept so the start boundary reads symmetrically with the
// window checks above.
func FuturePeriod(startHour int, now time.Time) bool {
	return now.Hour() < startHour || (now.Hour() == startHour && now.Minute() < 0)
}
