package models

import "time"

// nameChangeCooldown is how long a user has to wait between display name
// changes. The backend persists LastNameChangeDate; the client only gates
// the edit affordance.
const nameChangeCooldown = 7 * 24 * time.Hour

type User struct {
	ID                 int    `json:"id,omitempty"`
	StudentID          string `json:"studentId"`
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Name               string `json:"name,omitempty"`
	Role               string `json:"role,omitempty"`
	Avatar             string `json:"avatar,omitempty"`
	IsAdmin            bool   `json:"isAdmin"`
	JoinedClubs        []int  `json:"joinedClubs"`
	JoinedProjects     []int  `json:"joinedProjects"`
	LastNameChangeDate string `json:"lastNameChangeDate,omitempty"`
}

// DisplayName is the computed name shown in the UI.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CanChangeName reports whether the name-change cooldown has elapsed.
// A user with no recorded change date has never changed their name and
// may always edit it.
func (u User) CanChangeName(now time.Time) bool {
	last, ok := u.lastNameChange()
	if !ok {
		return true
	}
	return now.Sub(last) >= nameChangeCooldown
}

// NameChangeDaysLeft returns the whole days remaining before the name can
// be changed again, 0 when editing is already allowed. Elapsed days are
// floored, so 6 days and 23 hours into the cooldown still reports 1 day left.
func (u User) NameChangeDaysLeft(now time.Time) int {
	last, ok := u.lastNameChange()
	if !ok {
		return 0
	}
	elapsed := now.Sub(last)
	if elapsed >= nameChangeCooldown {
		return 0
	}
	elapsedDays := int(elapsed.Hours() / 24)
	return int(nameChangeCooldown.Hours()/24) - elapsedDays
}

func (u User) lastNameChange() (time.Time, bool) {
	if u.LastNameChangeDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, u.LastNameChangeDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
