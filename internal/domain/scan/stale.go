package scan

import "time"

// DaysPerMonth is the fixed calendar-month approximation used for every age
// computation in the tool, so boundary results are reproducible.
const DaysPerMonth = 30.44

// AgeMonths returns the age of a timestamp in (fractional) months.
func AgeMonths(now, lastCommit time.Time) float64 {
	return now.Sub(lastCommit).Hours() / 24 / DaysPerMonth
}

// Matches reports whether the record falls inside the inclusive age window.
// older and younger are month bounds; nil means no bound on that side. A
// record with no known timestamp never matches: unknown age is excluded
// rather than assumed stale or fresh.
func Matches(r Record, older, younger *int, now time.Time) bool {
	if !r.HasCommit() {
		return false
	}
	age := AgeMonths(now, r.LastCommit)
	if older != nil && age < float64(*older) {
		return false
	}
	if younger != nil && age > float64(*younger) {
		return false
	}
	return true
}

// Filter returns the records matching the age window, preserving order.
func Filter(records []Record, older, younger *int, now time.Time) []Record {
	var out []Record
	for _, r := range records {
		if Matches(r, older, younger, now) {
			out = append(out, r)
		}
	}
	return out
}
