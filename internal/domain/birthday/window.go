// Package birthday holds the pure scheduling logic: the anniversary window
// evaluator, the celebrant selection, the chat lifecycle policy and the
// roster diff. Nothing here touches storage or the chat platform.
package birthday

import "time"

// IsWithinWindow reports whether today falls inside the half-open interval
// (anniversary-before, anniversary+after], right-closed. The anniversary
// itself always qualifies, even with before == 0. The window stays
// continuous across the year boundary: a January anniversary opens its
// window in December, and a December anniversary keeps its trailing days
// into January.
func IsWithinWindow(today time.Time, month, day, before, after int) bool {
	today = dateOf(today)

	// The relevant occurrence may be last year's (trailing edge reaching
	// into January), this year's, or next year's (window opening in
	// December).
	for _, year := range []int{today.Year() - 1, today.Year(), today.Year() + 1} {
		if inWindow(today, anniversaryIn(year, month, day), before, after) {
			return true
		}
	}

	return false
}

// IsAnniversary reports whether today is the calendar anniversary of
// (month, day), ignoring year.
func IsAnniversary(today time.Time, month, day int) bool {
	today = dateOf(today)
	return today.Equal(anniversaryIn(today.Year(), month, day))
}

// DaysPastAnniversary returns how many days today is past the most recent
// occurrence of (month, day). Zero on the anniversary itself.
func DaysPastAnniversary(today time.Time, month, day int) int {
	today = dateOf(today)
	anniv := anniversaryIn(today.Year(), month, day)
	if today.Before(anniv) {
		anniv = anniversaryIn(today.Year()-1, month, day)
	}
	return int(today.Sub(anniv) / (24 * time.Hour))
}

func inWindow(today, anniv time.Time, before, after int) bool {
	if today.Equal(anniv) {
		return true
	}
	return today.After(anniv.AddDate(0, 0, -before)) && !today.After(anniv.AddDate(0, 0, after))
}

// anniversaryIn returns the observed anniversary of (month, day) in year.
// A Feb 29 birth date is observed on Feb 28 in non-leap years, keeping the
// anniversary inside February instead of letting date normalization push
// it to March 1.
func anniversaryIn(year, month, day int) time.Time {
	if month == 2 && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// dateOf truncates a timestamp to its calendar date. All window arithmetic
// runs on UTC midnights so daylight saving shifts cannot skew day counts.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
