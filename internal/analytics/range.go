package analytics

import "time"

// Range selects a time window over ledger history. Preset ranges count
// back from now; "today" means local midnight to now; "custom" takes
// calendar dates and includes the whole end day.
type Range struct {
	Preset string // today, 3days, 7days, 2weeks, 1month, 3months, 6months, 1year, custom
	Start  string // custom lower bound, 2006-01-02
	End    string // custom upper bound, 2006-01-02
}

const dateLayout = "2006-01-02"

// Window resolves the range against the given instant. ok=false means
// no filtering: an unknown preset, or a custom range with a missing
// bound, degrades to the unfiltered set rather than erroring.
func (r Range) Window(now time.Time) (start, end time.Time, ok bool) {
	if r.Preset == "custom" {
		if r.Start == "" || r.End == "" {
			return time.Time{}, time.Time{}, false
		}
		s, err := time.ParseInLocation(dateLayout, r.Start, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		e, err := time.ParseInLocation(dateLayout, r.End, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		// Inclusive of the full end day.
		e = e.AddDate(0, 0, 1).Add(-time.Millisecond)
		return s, e, true
	}

	switch r.Preset {
	case "today":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "3days":
		start = now.AddDate(0, 0, -3)
	case "7days":
		start = now.AddDate(0, 0, -7)
	case "2weeks":
		start = now.AddDate(0, 0, -14)
	case "1month":
		start = now.AddDate(0, -1, 0)
	case "3months":
		start = now.AddDate(0, -3, 0)
	case "6months":
		start = now.AddDate(0, -6, 0)
	case "1year":
		start = now.AddDate(-1, 0, 0)
	default:
		return time.Time{}, time.Time{}, false
	}
	return start, now, true
}

// Contains reports whether ts falls within [start, end].
func (r Range) Contains(ts, now time.Time) bool {
	start, end, ok := r.Window(now)
	if !ok {
		return true
	}
	return !ts.Before(start) && !ts.After(end)
}
