package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/joehodgson0/teamhub/internal/domain/award"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
)

func TestAwardService_ListByTeam(t *testing.T) {
	t.Parallel()

	awardRepo := memory.NewAwardRepository([]award.Award{
		{ID: "aw-1", TeamID: "team-1", Title: "Player of the Month", Recipient: "Amelia", Month: 6, Year: 2026},
		{ID: "aw-2", TeamID: "team-1", Title: "Most Improved", Recipient: "Ben", Month: 8, Year: 2026},
		{ID: "aw-3", TeamID: "team-1", Title: "Top Scorer", Recipient: "Chloe", Month: 12, Year: 2025},
	})
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "AAAABBBB"},
	})
	service := NewAwardService(awardRepo, teamRepo, memory.NewPlayerRepository(nil), nil)
	ctx := context.Background()

	coach := user.User{ID: "coach-1", Email: "dana@example.test", Roles: []user.Role{user.RoleCoach}, ClubID: "club-1", TeamIDs: []string{"team-1"}}
	got, err := service.ListByTeam(ctx, coach, "team-1")
	if err != nil {
		t.Fatalf("ListByTeam error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 awards, got %d", len(got))
	}
	if got[0].ID != "aw-2" || got[1].ID != "aw-1" || got[2].ID != "aw-3" {
		t.Fatalf("unexpected order: %+v", got)
	}

	outsider := user.User{ID: "coach-2", Email: "lee@example.test", Roles: []user.Role{user.RoleCoach}, TeamIDs: []string{"team-9"}}
	if _, err := service.ListByTeam(ctx, outsider, "team-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for ineligible team, got %v", err)
	}
}
