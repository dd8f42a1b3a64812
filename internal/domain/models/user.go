package models

import "strconv"

// Gender values as reported by the upstream collection.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserRecord is one row of the users collection. Immutable once fetched;
// the whole page is replaced on every fetch.
type UserRecord struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MaidenName string `json:"maidenName"`
	Age        int    `json:"age"`
	Gender     Gender `json:"gender"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	BirthDate  string `json:"birthDate"`
	BloodGroup string `json:"bloodGroup"`
	EyeColor   string `json:"eyeColor"`
}

// SearchValues renders every field as text for the global search filter.
func (u UserRecord) SearchValues() []string {
	return []string{
		strconv.Itoa(u.ID),
		u.FirstName,
		u.LastName,
		u.MaidenName,
		strconv.Itoa(u.Age),
		string(u.Gender),
		u.Email,
		u.Username,
		u.BirthDate,
		u.BloodGroup,
		u.EyeColor,
	}
}

// UsersPage is the upstream payload for one users fetch.
type UsersPage struct {
	Users []UserRecord `json:"users"`
	Total int          `json:"total"`
}
