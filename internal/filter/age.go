package filter

import "time"

const (
	minAge = 0
	maxAge = 150
)

// Age computes standard calendar age: year difference, decremented by one
// when the birthday has not yet occurred in the current year.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
