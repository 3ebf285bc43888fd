package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
	idgen "github.com/joehodgson0/teamhub/internal/platform/id"
)

func newEventService(events []event.Event, players []player.Player) *EventService {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "AAAABBBB"},
	})
	service := NewEventService(memory.NewEventRepository(events), teamRepo, memory.NewPlayerRepository(players), idgen.NewRandomGenerator(), nil)
	service.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return service
}

func TestEventService_Create(t *testing.T) {
	t.Parallel()

	service := newEventService(nil, nil)
	ctx := context.Background()
	coach := user.User{ID: "coach-1", Email: "dana@example.test", Roles: []user.Role{user.RoleCoach}, ClubID: "club-1", TeamIDs: []string{"team-1"}}

	got, err := service.Create(ctx, coach, CreateEventInput{
		TeamID:    "team-1",
		Type:      "Match",
		Opponent:  "Rovers",
		StartTime: time.Date(2026, 8, 8, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 8, 8, 11, 0, 0, 0, time.UTC),
		HomeAway:  "home",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Type != event.TypeMatch || !got.IsHomeFixture() {
		t.Fatalf("unexpected event: %+v", got)
	}

	// Home/away is a match-only attribute.
	_, err = service.Create(ctx, coach, CreateEventInput{
		TeamID:    "team-1",
		Type:      "training",
		StartTime: time.Date(2026, 8, 8, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 8, 8, 11, 0, 0, 0, time.UTC),
		HomeAway:  "home",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	parent := user.User{ID: "parent-1", Email: "sam@example.test", Roles: []user.Role{user.RoleParent}}
	_, err = service.Create(ctx, parent, CreateEventInput{
		TeamID:    "team-1",
		Type:      "training",
		StartTime: time.Date(2026, 8, 8, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 8, 8, 11, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestEventService_ListVisible_Windows(t *testing.T) {
	t.Parallel()

	events := []event.Event{
		{
			ID: "ev-past", TeamID: "team-1", Type: event.TypeTraining,
			StartTime: time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 7, 20, 11, 0, 0, 0, time.UTC),
		},
		{
			ID: "ev-soon", TeamID: "team-1", Type: event.TypeTraining,
			StartTime: time.Date(2026, 8, 5, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 8, 5, 11, 0, 0, 0, time.UTC),
		},
		{
			ID: "ev-later", TeamID: "team-1", Type: event.TypeTraining,
			StartTime: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 8, 15, 11, 0, 0, 0, time.UTC),
		},
	}
	service := newEventService(events, nil)
	coach := user.User{ID: "coach-1", Email: "dana@example.test", Roles: []user.Role{user.RoleCoach}, ClubID: "club-1", TeamIDs: []string{"team-1"}}
	ctx := context.Background()

	upcoming, err := service.ListVisible(ctx, coach, "upcoming")
	if err != nil {
		t.Fatalf("ListVisible upcoming error: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].ID != "ev-soon" || upcoming[1].ID != "ev-later" {
		t.Fatalf("unexpected upcoming window: %+v", upcoming)
	}

	past, err := service.ListVisible(ctx, coach, "past")
	if err != nil {
		t.Fatalf("ListVisible past error: %v", err)
	}
	if len(past) != 1 || past[0].ID != "ev-past" {
		t.Fatalf("unexpected past window: %+v", past)
	}

	// Empty defaults to upcoming; unknown windows are rejected.
	def, err := service.ListVisible(ctx, coach, "")
	if err != nil || len(def) != 2 {
		t.Fatalf("default window: %v %+v", err, def)
	}
	if _, err := service.ListVisible(ctx, coach, "sometime"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestEventService_SetAvailability(t *testing.T) {
	t.Parallel()

	events := []event.Event{
		{
			ID: "ev-1", TeamID: "team-1", Type: event.TypeMatch, Opponent: "Rovers",
			StartTime: time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 7, 20, 11, 0, 0, 0, time.UTC),
		},
	}
	players := []player.Player{
		{ID: "p1", Name: "Amelia", DateOfBirth: time.Date(2016, 5, 3, 0, 0, 0, 0, time.UTC), TeamID: "team-1", ParentID: "parent-1"},
		{ID: "p2", Name: "Ben", DateOfBirth: time.Date(2016, 11, 19, 0, 0, 0, 0, time.UTC), TeamID: "team-9", ParentID: "parent-1"},
	}
	service := newEventService(events, players)
	parent := user.User{ID: "parent-1", Email: "sam@example.test", Roles: []user.Role{user.RoleParent}, ClubID: "club-1"}
	ctx := context.Background()

	// Answering after the event has passed is allowed.
	got, err := service.SetAvailability(ctx, parent, "ev-1", "p1", "Available")
	if err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	if got.Availability["p1"] != event.AvailabilityAvailable {
		t.Fatalf("availability not recorded: %+v", got.Availability)
	}

	// Overwriting works.
	got, err = service.SetAvailability(ctx, parent, "ev-1", "p1", "unavailable")
	if err != nil {
		t.Fatalf("overwrite error: %v", err)
	}
	if got.Availability["p1"] != event.AvailabilityUnavailable {
		t.Fatalf("availability not overwritten: %+v", got.Availability)
	}

	if _, err := service.SetAvailability(ctx, parent, "ev-1", "p2", "available"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for off-team player, got %v", err)
	}
	other := user.User{ID: "parent-2", Email: "kim@example.test", Roles: []user.Role{user.RoleParent}}
	if _, err := service.SetAvailability(ctx, other, "ev-1", "p1", "available"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for someone else's player, got %v", err)
	}
	if _, err := service.SetAvailability(ctx, parent, "ev-missing", "p1", "available"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := service.SetAvailability(ctx, parent, "ev-1", "p1", "maybe"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown status, got %v", err)
	}
}
