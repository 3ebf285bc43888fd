package user

import "fmt"

type Role string

const (
	RoleCoach  Role = "coach"
	RoleParent Role = "parent"
)

var AllRoles = map[Role]struct{}{
	RoleCoach:  {},
	RoleParent: {},
}

// User is an adult account inside a club: a coach, a parent, or both.
// TeamIDs is meaningful only for coaches and is the authoritative set of
// teams they manage. A parent's team affiliations are derived from their
// players and are never stored here.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []Role
	ClubID       string
	TeamIDs      []string
}

func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u User) ManagesTeam(teamID string) bool {
	if !u.HasRole(RoleCoach) {
		return false
	}
	for _, id := range u.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	for _, r := range u.Roles {
		if _, ok := AllRoles[r]; !ok {
			return fmt.Errorf("unknown role %q", r)
		}
	}
	return nil
}
