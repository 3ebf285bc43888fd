package visibility

import (
	"testing"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/post"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
)

func TestMembershipFailClosed(t *testing.T) {
	m := NewMembership(user.User{ID: "u1"}, nil, nil)

	if got := FilterTeams(m, []team.Team{{ID: "t1"}}); len(got) != 0 {
		t.Fatalf("expected no teams, got %d", len(got))
	}
	if got := FilterEvents(m, []event.Event{{ID: "e1", TeamID: "t1"}}); len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
	if got := FilterPosts(m, []post.Post{{ID: "p1", ClubID: "c1"}}); len(got) != 0 {
		t.Fatalf("expected no posts, got %d", len(got))
	}
	if got := FilterResults(m, []result.MatchResult{{FixtureID: "f1", TeamID: "t1"}}); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestDualRoleUnionWithoutDuplicates(t *testing.T) {
	u := user.User{
		ID:      "u1",
		Roles:   []user.Role{user.RoleCoach, user.RoleParent},
		ClubID:  "c1",
		TeamIDs: []string{"team-a"},
	}
	players := []player.Player{
		{ID: "p1", ParentID: "u1", TeamID: "team-b"},
		{ID: "p2", ParentID: "u1", TeamID: "team-a"},
	}
	m := NewMembership(u, players, nil)

	events := []event.Event{
		{ID: "e1", TeamID: "team-a"},
		{ID: "e2", TeamID: "team-b"},
		{ID: "e3", TeamID: "team-c"},
	}
	got := FilterEvents(m, events)
	if len(got) != 2 {
		t.Fatalf("expected events from both roles, got %d", len(got))
	}

	// Same event reachable via both roles must appear once.
	again := FilterEvents(m, []event.Event{{ID: "e1", TeamID: "team-a"}, {ID: "e1", TeamID: "team-a"}})
	if len(again) != 1 {
		t.Fatalf("expected de-duplicated events, got %d", len(again))
	}
}

func TestFilterPostsClubWideAndTeamScoped(t *testing.T) {
	u := user.User{
		ID:      "u1",
		Roles:   []user.Role{user.RoleParent},
		ClubID:  "c1",
		TeamIDs: []string{"team-x"}, // ignored: not a coach
	}
	players := []player.Player{{ID: "p1", ParentID: "u1", TeamID: "team-b"}}
	m := NewMembership(u, players, nil)

	posts := []post.Post{
		{ID: "club", Type: post.TypeAnnouncement, ClubID: "c1"},
		{ID: "other-club", Type: post.TypeAnnouncement, ClubID: "c2"},
		{ID: "own-team", Type: post.TypeKitRequest, TeamID: "team-b"},
		{ID: "coached-team", Type: post.TypeKitRequest, TeamID: "team-x"},
	}

	got := FilterPosts(m, posts)
	if len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	if got[0].ID != "club" || got[1].ID != "own-team" {
		t.Fatalf("unexpected posts: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterResultsClubExpansionForCoach(t *testing.T) {
	u := user.User{
		ID:      "coach",
		Roles:   []user.Role{user.RoleCoach},
		ClubID:  "c1",
		TeamIDs: []string{"team-a"},
	}
	m := NewMembership(u, nil, []string{"team-a", "team-b"})

	results := []result.MatchResult{
		{FixtureID: "f1", TeamID: "team-a"},
		{FixtureID: "f2", TeamID: "team-b"},
		{FixtureID: "f3", TeamID: "team-z"},
	}

	got := FilterResults(m, results)
	if len(got) != 2 {
		t.Fatalf("expected club-wide result visibility, got %d", len(got))
	}
}

func TestFilterResultsParentScope(t *testing.T) {
	u := user.User{ID: "parent", Roles: []user.Role{user.RoleParent}, ClubID: "c1"}
	players := []player.Player{{ID: "p1", ParentID: "parent", TeamID: "team-b"}}
	m := NewMembership(u, players, []string{"team-a", "team-b"})

	results := []result.MatchResult{
		{FixtureID: "f1", TeamID: "team-a"},
		{FixtureID: "f2", TeamID: "team-b"},
	}

	got := FilterResults(m, results)
	if len(got) != 1 || got[0].TeamID != "team-b" {
		t.Fatalf("expected only the player's team results, got %+v", got)
	}
}
