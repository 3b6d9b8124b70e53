package reports

import (
	"time"
)

// Named reporting periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

const dateLayout = "2006-01-02"

// defaultWindowDays is the trailing window applied when no dates are given.
const defaultWindowDays = 30

// Window is a concrete inclusive [Start, End] instant pair scoping a report.
type Window struct {
	Start time.Time
	End   time.Time
}

// Label renders the window as a human-readable period, e.g.
// "Jan 02 - Feb 01, 2026".
func (w Window) Label() string {
	return w.Start.Format("Jan 02") + " - " + w.End.Format("Jan 02, 2006")
}

// Mid is the temporal midpoint used for trend half-window splits.
func (w Window) Mid() time.Time {
	return w.Start.Add(w.End.Sub(w.Start) / 2)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// resolveWindow turns optional YYYY-MM-DD date strings into a concrete
// window. Start is the beginning of the first day and End the end of the
// last. Missing dates fall back to a trailing 30-day window ending today;
// an unparseable date is rejected with InvalidFilterError.
func resolveWindow(startStr, endStr string, now time.Time) (Window, error) {
	end := endOfDay(now)
	if endStr != "" {
		t, err := time.ParseInLocation(dateLayout, endStr, now.Location())
		if err != nil {
			return Window{}, &InvalidFilterError{Field: "endDate", Value: endStr, Reason: "expected YYYY-MM-DD"}
		}
		end = endOfDay(t)
	}

	start := startOfDay(end.AddDate(0, 0, -defaultWindowDays))
	if startStr != "" {
		t, err := time.ParseInLocation(dateLayout, startStr, now.Location())
		if err != nil {
			return Window{}, &InvalidFilterError{Field: "startDate", Value: startStr, Reason: "expected YYYY-MM-DD"}
		}
		start = startOfDay(t)
	}

	if start.After(end) {
		return Window{}, &InvalidFilterError{Field: "startDate", Value: startStr, Reason: "startDate is after endDate"}
	}
	return Window{Start: start, End: end}, nil
}

// resolveNamedWindow maps a named period onto a concrete window ending
// today. Unknown names fall back to monthly.
func resolveNamedWindow(period string, now time.Time) Window {
	end := endOfDay(now)
	switch period {
	case PeriodDaily:
		return Window{Start: startOfDay(now), End: end}
	case PeriodWeekly:
		return Window{Start: startOfDay(now.AddDate(0, 0, -6)), End: end}
	default:
		return Window{Start: startOfDay(now.AddDate(0, 0, -defaultWindowDays)), End: end}
	}
}
