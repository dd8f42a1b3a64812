// Package filter derives the visible subset of an already-fetched page.
// Everything here is pure and operates on the in-memory page only; it is not
// a query against the remote collection and never changes the reported total.
package filter

import (
	"time"

	"github.com/Rishikeshk9/astudio/internal/domain/models"
	"github.com/Rishikeshk9/astudio/internal/utils"
)

// UserFilters is the active predicate set for the users collection. A zero
// value matches everything.
type UserFilters struct {
	Name      string
	Email     string
	BirthFrom *time.Time
	BirthTo   *time.Time
	Genders   []string
}

// Apply evaluates all predicates ANDed against one page of users. The birth
// date range is compared as ages: the "to" date bounds the lower age and the
// "from" date bounds the upper age, because an older birth date means a
// younger age.
func (f UserFilters) Apply(items []models.UserRecord, now time.Time) []models.UserRecord {
	out := items

	if name := utils.TrimOrEmpty(f.Name); name != "" {
		filtered := make([]models.UserRecord, 0, len(out))
		for _, u := range out {
			if utils.ContainsFold(u.FirstName, name) || utils.ContainsFold(u.LastName, name) {
				filtered = append(filtered, u)
			}
		}
		out = filtered
	}

	if email := utils.TrimOrEmpty(f.Email); email != "" {
		filtered := make([]models.UserRecord, 0, len(out))
		for _, u := range out {
			if utils.ContainsFold(u.Email, email) {
				filtered = append(filtered, u)
			}
		}
		out = filtered
	}

	if f.BirthFrom != nil || f.BirthTo != nil {
		fromAge := minAge
		if f.BirthTo != nil {
			fromAge = Age(*f.BirthTo, now)
		}
		toAge := maxAge
		if f.BirthFrom != nil {
			toAge = Age(*f.BirthFrom, now)
		}
		filtered := make([]models.UserRecord, 0, len(out))
		for _, u := range out {
			birth, err := utils.ParseDate(u.BirthDate)
			if err != nil {
				continue
			}
			age := Age(birth, now)
			if age >= fromAge && age <= toAge {
				filtered = append(filtered, u)
			}
		}
		out = filtered
	}

	if len(f.Genders) > 0 {
		wanted := map[string]bool{}
		for _, g := range f.Genders {
			wanted[g] = true
		}
		filtered := make([]models.UserRecord, 0, len(out))
		for _, u := range out {
			if wanted[string(u.Gender)] {
				filtered = append(filtered, u)
			}
		}
		out = filtered
	}

	return out
}
