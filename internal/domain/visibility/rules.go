// Package visibility holds the role-based filtering rules that gate every
// list endpoint. The rules are pure functions over entity snapshots so the
// same predicate serves every call site instead of being re-derived per
// handler.
package visibility

import (
	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
)

// Membership is a per-request snapshot of the requesting user's
// affiliations. It must be rebuilt for every request; role and team
// membership can change between requests, so nothing here is cached.
type Membership struct {
	Roles  []user.Role
	ClubID string
	// CoachTeamIDs is the authoritative set of teams the user manages
	// (empty unless the user holds the coach role).
	CoachTeamIDs []string
	// ParentTeamIDs is derived from the user's players' team assignments
	// (empty unless the user holds the parent role).
	ParentTeamIDs []string
	// ClubTeamIDs is the full club→teams expansion, consulted only by the
	// match-result rule for coaches.
	ClubTeamIDs []string
}

// NewMembership derives a Membership from a user and their players. The
// clubTeamIDs expansion may be nil when the caller will not filter results.
func NewMembership(u user.User, players []player.Player, clubTeamIDs []string) Membership {
	m := Membership{
		Roles:       u.Roles,
		ClubID:      u.ClubID,
		ClubTeamIDs: clubTeamIDs,
	}
	if u.HasRole(user.RoleCoach) {
		m.CoachTeamIDs = u.TeamIDs
	}
	if u.HasRole(user.RoleParent) {
		m.ParentTeamIDs = player.TeamIDs(players)
	}
	return m
}

func (m Membership) hasRole(role user.Role) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TeamScope is the union of team IDs the user can see teams, events and
// team-scoped posts for, across every role they hold. A user with no roles
// or no affiliations gets an empty scope: fail closed, never an error.
func (m Membership) TeamScope() map[string]struct{} {
	scope := make(map[string]struct{})
	if m.hasRole(user.RoleCoach) {
		for _, id := range m.CoachTeamIDs {
			scope[id] = struct{}{}
		}
	}
	if m.hasRole(user.RoleParent) {
		for _, id := range m.ParentTeamIDs {
			scope[id] = struct{}{}
		}
	}
	return scope
}

// ResultScope is the union of team IDs the user can see match results for.
// Coaches see every team in their club; parents see the teams their players
// are on.
func (m Membership) ResultScope() map[string]struct{} {
	scope := make(map[string]struct{})
	if m.hasRole(user.RoleCoach) && m.ClubID != "" {
		for _, id := range m.ClubTeamIDs {
			scope[id] = struct{}{}
		}
	}
	if m.hasRole(user.RoleParent) {
		for _, id := range m.ParentTeamIDs {
			scope[id] = struct{}{}
		}
	}
	return scope
}

// FilterTeams keeps the teams in the user's team scope, de-duplicated by ID.
func FilterTeams(m Membership, teams []team.Team) []team.Team {
	scope := m.TeamScope()
	seen := make(map[string]struct{}, len(teams))
	out := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		if _, ok := scope[t.ID]; !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

// FilterEvents keeps the events whose owning team is in the user's scope.
func FilterEvents(m Membership, events []event.Event) []event.Event {
	scope := m.TeamScope()
	seen := make(map[string]struct{}, len(events))
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if _, ok := scope[e.TeamID]; !ok {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// FilterPosts keeps club-wide posts for the user's club plus team posts in
// the user's team scope. Club-wide posts are included once ClubID is set,
// independent of role.
func FilterPosts(m Membership, posts []post.Post) []post.Post {
	scope := m.TeamScope()
	seen := make(map[string]struct{}, len(posts))
	out := make([]post.Post, 0, len(posts))
	for _, p := range posts {
		eligible := false
		switch {
		case p.IsClubWide():
			eligible = m.ClubID != "" && p.ClubID == m.ClubID
		case p.TeamID != "":
			_, eligible = scope[p.TeamID]
		}
		if !eligible {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// FilterResults keeps the match results whose team is in the user's result
// scope, de-duplicated by fixture.
func FilterResults(m Membership, results []result.MatchResult) []result.MatchResult {
	scope := m.ResultScope()
	seen := make(map[string]struct{}, len(results))
	out := make([]result.MatchResult, 0, len(results))
	for _, r := range results {
		if _, ok := scope[r.TeamID]; !ok {
			continue
		}
		if _, dup := seen[r.FixtureID]; dup {
			continue
		}
		seen[r.FixtureID] = struct{}{}
		out = append(out, r)
	}
	return out
}
