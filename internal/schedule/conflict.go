package schedule

// Interval is a half-open [Start, End) time-of-day interval.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether two half-open intervals overlap. Intervals that
// merely touch at an endpoint do not conflict, so back-to-back meetings
// are allowed.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// HasConflict reports whether the candidate overlaps any existing
// interval. The caller must pre-filter existing intervals to the same
// supervisor and calendar date; no identity filtering happens here.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if Overlaps(candidate, e) {
			return true
		}
	}
	return false
}
