package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/club"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
)

func TestPlayerService_Create(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewTeamRepository(nil), memory.NewClubRepository(nil), idgen.NewRandomGenerator(), nil)
	ctx := context.Background()

	parent := user.User{ID: "parent-1", Email: "sam@example.test", Roles: []user.Role{user.RoleParent}}
	got, err := service.Create(ctx, parent, CreatePlayerInput{
		Name:        "  Amelia Hart ",
		DateOfBirth: time.Date(2016, 5, 3, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Name != "Amelia Hart" || got.ParentID != "parent-1" || got.TeamID != "" {
		t.Fatalf("unexpected player: %+v", got)
	}

	coach := user.User{ID: "coach-1", Email: "dana@example.test", Roles: []user.Role{user.RoleCoach}}
	if _, err := service.Create(ctx, coach, CreatePlayerInput{Name: "X", DateOfBirth: time.Now()}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for coach, got %v", err)
	}
	if _, err := service.Create(ctx, parent, CreatePlayerInput{Name: "X"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input without date of birth, got %v", err)
	}
}

func TestPlayerService_JoinTeamByCode(t *testing.T) {
	t.Parallel()

	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "p1", Name: "Amelia", DateOfBirth: time.Date(2016, 5, 3, 0, 0, 0, 0, time.UTC), ParentID: "parent-1"},
		{ID: "p2", Name: "Ben", DateOfBirth: time.Date(2016, 11, 19, 0, 0, 0, 0, time.UTC), ParentID: "parent-other"},
		{ID: "p3", Name: "Chloe", DateOfBirth: time.Date(2014, 2, 27, 0, 0, 0, 0, time.UTC), ParentID: "parent-1", TeamID: "team-other"},
	})
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "TIGERSU1"},
	})
	clubRepo := memory.NewClubRepository([]club.Club{
		{ID: "club-1", Name: "Riverside", Code: "RIVRSD25"},
	})
	service := NewPlayerService(playerRepo, teamRepo, clubRepo, idgen.NewRandomGenerator(), nil)
	ctx := context.Background()

	parent := user.User{ID: "parent-1", Email: "sam@example.test", Roles: []user.Role{user.RoleParent}}
	got, err := service.JoinTeamByCode(ctx, parent, "p1", "tigersu1")
	if err != nil {
		t.Fatalf("JoinTeamByCode error: %v", err)
	}
	if got.TeamID != "team-1" {
		t.Fatalf("player not rostered: %+v", got)
	}

	storedTeam, _, _ := teamRepo.GetByID(ctx, "team-1")
	if !storedTeam.HasPlayer("p1") {
		t.Fatalf("team roster missing player: %+v", storedTeam)
	}
	c, _, _ := clubRepo.GetByID(ctx, "club-1")
	if c.TotalPlayers != 1 {
		t.Fatalf("club player total not bumped: %+v", c)
	}

	// Same team again is a no-op.
	if _, err := service.JoinTeamByCode(ctx, parent, "p1", "TIGERSU1"); err != nil {
		t.Fatalf("idempotent rejoin error: %v", err)
	}

	if _, err := service.JoinTeamByCode(ctx, parent, "p2", "TIGERSU1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for someone else's player, got %v", err)
	}
	if _, err := service.JoinTeamByCode(ctx, parent, "p3", "TIGERSU1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for already rostered player, got %v", err)
	}
	if _, err := service.JoinTeamByCode(ctx, parent, "ghost", "TIGERSU1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown player, got %v", err)
	}
}

func TestPlayerService_ListMine(t *testing.T) {
	t.Parallel()

	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "p1", Name: "Amelia", DateOfBirth: time.Date(2016, 5, 3, 0, 0, 0, 0, time.UTC), ParentID: "parent-1"},
		{ID: "p2", Name: "Ben", DateOfBirth: time.Date(2016, 11, 19, 0, 0, 0, 0, time.UTC), ParentID: "parent-2"},
	})
	service := NewPlayerService(playerRepo, memory.NewTeamRepository(nil), memory.NewClubRepository(nil), idgen.NewRandomGenerator(), nil)

	got, err := service.ListMine(context.Background(), user.User{ID: "parent-1"})
	if err != nil {
		t.Fatalf("ListMine error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("unexpected players: %+v", got)
	}
}
