package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/infrastructure/repository/memory"
)

type resultFixture struct {
	service    *ResultService
	teamRepo   *memory.TeamRepository
	resultRepo *memory.ResultRepository
	coach      user.User
}

func newResultFixture(t *testing.T, events []event.Event, results []result.MatchResult) resultFixture {
	t.Helper()

	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "AAAABBBB"},
		{ID: "team-2", ClubID: "club-1", Name: "U12", AgeGroup: team.AgeGroupU12, Code: "CCCCDDDD"},
	})
	resultRepo := memory.NewResultRepository(results)
	playerRepo := memory.NewPlayerRepository(nil)
	eventRepo := memory.NewEventRepository(events)

	service := NewResultService(eventRepo, teamRepo, playerRepo, resultRepo, nil, nil)
	service.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	coach := user.User{
		ID:      "coach-1",
		Email:   "coach@example.test",
		Roles:   []user.Role{user.RoleCoach},
		ClubID:  "club-1",
		TeamIDs: []string{"team-1", "team-2"},
	}

	return resultFixture{service: service, teamRepo: teamRepo, resultRepo: resultRepo, coach: coach}
}

func matchEvent(id, teamID string, homeAway event.HomeAway) event.Event {
	return event.Event{
		ID:        id,
		TeamID:    teamID,
		Type:      event.TypeMatch,
		Opponent:  "Rovers",
		StartTime: time.Date(2026, 7, 25, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 7, 25, 11, 0, 0, 0, time.UTC),
		HomeAway:  homeAway,
	}
}

func TestResultService_Submit_HomeWinUpdatesRecord(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayHome)}, nil)

	got, err := fx.service.Submit(context.Background(), fx.coach, SubmitResultInput{
		FixtureID:     "fx-1",
		TeamID:        "team-1",
		HomeTeamGoals: 3,
		AwayTeamGoals: 1,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if got.Outcome != result.OutcomeWin {
		t.Fatalf("expected win, got %q", got.Outcome)
	}
	if !got.IsHomeFixture {
		t.Fatalf("expected home fixture perspective")
	}

	stored, _, err := fx.teamRepo.GetByID(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.Wins != 1 || stored.Draws != 0 || stored.Losses != 0 {
		t.Fatalf("unexpected record: %d/%d/%d", stored.Wins, stored.Draws, stored.Losses)
	}
}

func TestResultService_Submit_AwayDrawWithPlayerStats(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayAway)}, nil)

	got, err := fx.service.Submit(context.Background(), fx.coach, SubmitResultInput{
		FixtureID:     "fx-1",
		TeamID:        "team-1",
		HomeTeamGoals: 2,
		AwayTeamGoals: 2,
		PlayerStats: map[string]result.StatLine{
			"p1": {Goals: 2},
		},
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if got.Outcome != result.OutcomeDraw {
		t.Fatalf("expected draw, got %q", got.Outcome)
	}
	if got.PlayerStats["p1"].Goals != 2 {
		t.Fatalf("player stats dropped: %+v", got.PlayerStats)
	}

	stored, _, err := fx.teamRepo.GetByID(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.Wins != 0 || stored.Draws != 1 || stored.Losses != 0 {
		t.Fatalf("unexpected record: %d/%d/%d", stored.Wins, stored.Draws, stored.Losses)
	}
}

func TestResultService_Submit_AwayPerspectiveLoss(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayAway)}, nil)

	// Home side scored more, so the away submitting team lost.
	got, err := fx.service.Submit(context.Background(), fx.coach, SubmitResultInput{
		FixtureID:     "fx-1",
		TeamID:        "team-1",
		HomeTeamGoals: 4,
		AwayTeamGoals: 1,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if got.Outcome != result.OutcomeLose {
		t.Fatalf("expected lose, got %q", got.Outcome)
	}
}

func TestResultService_Submit_ResubmissionReplacesAndRetallies(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayHome)}, nil)
	ctx := context.Background()

	if _, err := fx.service.Submit(ctx, fx.coach, SubmitResultInput{
		FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: 2, AwayTeamGoals: 0,
	}); err != nil {
		t.Fatalf("first Submit error: %v", err)
	}

	// Correction: the match actually finished 1-1.
	got, err := fx.service.Submit(ctx, fx.coach, SubmitResultInput{
		FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: 1, AwayTeamGoals: 1,
	})
	if err != nil {
		t.Fatalf("second Submit error: %v", err)
	}
	if got.Outcome != result.OutcomeDraw {
		t.Fatalf("expected draw after correction, got %q", got.Outcome)
	}

	rows, err := fx.resultRepo.ListByTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("ListByTeam error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one result per fixture, got %d", len(rows))
	}

	stored, _, err := fx.teamRepo.GetByID(ctx, "team-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.Wins != 0 || stored.Draws != 1 || stored.Losses != 0 {
		t.Fatalf("record not retallied: %d/%d/%d", stored.Wins, stored.Draws, stored.Losses)
	}
}

func TestResultService_Submit_PrunesEmptyStatLines(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayHome)}, nil)

	got, err := fx.service.Submit(context.Background(), fx.coach, SubmitResultInput{
		FixtureID:     "fx-1",
		TeamID:        "team-1",
		HomeTeamGoals: 1,
		AwayTeamGoals: 0,
		PlayerStats: map[string]result.StatLine{
			"p1": {Goals: 1},
			"p2": {},
		},
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if _, ok := got.PlayerStats["p2"]; ok {
		t.Fatalf("zero stat line should have been pruned: %+v", got.PlayerStats)
	}
	if len(got.PlayerStats) != 1 {
		t.Fatalf("expected one stat line, got %d", len(got.PlayerStats))
	}
}

func TestResultService_Submit_RejectsOverAttribution(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayHome)}, nil)
	ctx := context.Background()

	_, err := fx.service.Submit(ctx, fx.coach, SubmitResultInput{
		FixtureID:     "fx-1",
		TeamID:        "team-1",
		HomeTeamGoals: 1,
		AwayTeamGoals: 0,
		PlayerStats: map[string]result.StatLine{
			"p1": {Goals: 2},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	// Rejected submissions must leave nothing behind.
	rows, listErr := fx.resultRepo.ListByTeam(ctx, "team-1")
	if listErr != nil {
		t.Fatalf("ListByTeam error: %v", listErr)
	}
	if len(rows) != 0 {
		t.Fatalf("rejected submission was persisted: %+v", rows)
	}
	stored, _, getErr := fx.teamRepo.GetByID(ctx, "team-1")
	if getErr != nil {
		t.Fatalf("GetByID error: %v", getErr)
	}
	if stored.Wins != 0 || stored.Draws != 0 || stored.Losses != 0 {
		t.Fatalf("record changed on rejected submission: %d/%d/%d", stored.Wins, stored.Draws, stored.Losses)
	}
}

func TestResultService_Submit_ValidationOrder(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayHome)}, nil)
	ctx := context.Background()

	// Unknown fixture wins over every later check.
	_, err := fx.service.Submit(ctx, fx.coach, SubmitResultInput{
		FixtureID: "fx-missing", TeamID: "team-9", HomeTeamGoals: 99,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// Unmanaged team is rejected before the mismatch check.
	outsider := user.User{ID: "coach-2", Email: "other@example.test", Roles: []user.Role{user.RoleCoach}, TeamIDs: []string{"team-9"}}
	_, err = fx.service.Submit(ctx, outsider, SubmitResultInput{
		FixtureID: "fx-1", TeamID: "team-2", HomeTeamGoals: 1,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Managed team that does not own the fixture.
	_, err = fx.service.Submit(ctx, fx.coach, SubmitResultInput{
		FixtureID: "fx-1", TeamID: "team-2", HomeTeamGoals: 1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for team mismatch, got %v", err)
	}
}

func TestResultService_Submit_GoalRange(t *testing.T) {
	t.Parallel()

	fx := newResultFixture(t, []event.Event{matchEvent("fx-1", "team-1", event.HomeAwayHome)}, nil)

	_, err := fx.service.Submit(context.Background(), fx.coach, SubmitResultInput{
		FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: result.MaxGoals + 1, AwayTeamGoals: 0,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	_, err = fx.service.Submit(context.Background(), fx.coach, SubmitResultInput{
		FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: -1, AwayTeamGoals: 0,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResultService_ListVisible_ParentScope(t *testing.T) {
	t.Parallel()

	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "AAAABBBB"},
		{ID: "team-2", ClubID: "club-1", Name: "U12", AgeGroup: team.AgeGroupU12, Code: "CCCCDDDD"},
	})
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "p1", Name: "Kid One", DateOfBirth: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), TeamID: "team-1", ParentID: "parent-1"},
	})
	resultRepo := memory.NewResultRepository([]result.MatchResult{
		{FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: 1, IsHomeFixture: true, Outcome: result.OutcomeWin},
		{FixtureID: "fx-2", TeamID: "team-2", HomeTeamGoals: 1, IsHomeFixture: true, Outcome: result.OutcomeWin},
	})
	service := NewResultService(memory.NewEventRepository(nil), teamRepo, playerRepo, resultRepo, nil, nil)

	parent := user.User{ID: "parent-1", Email: "parent@example.test", Roles: []user.Role{user.RoleParent}, ClubID: "club-1"}
	got, err := service.ListVisible(context.Background(), parent)
	if err != nil {
		t.Fatalf("ListVisible error: %v", err)
	}
	if len(got) != 1 || got[0].TeamID != "team-1" {
		t.Fatalf("parent should only see their player's team results: %+v", got)
	}
}

func TestResultService_ListVisible_CoachSeesWholeClub(t *testing.T) {
	t.Parallel()

	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "AAAABBBB"},
		{ID: "team-2", ClubID: "club-1", Name: "U12", AgeGroup: team.AgeGroupU12, Code: "CCCCDDDD"},
	})
	resultRepo := memory.NewResultRepository([]result.MatchResult{
		{FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: 1, IsHomeFixture: true, Outcome: result.OutcomeWin},
		{FixtureID: "fx-2", TeamID: "team-2", HomeTeamGoals: 1, IsHomeFixture: true, Outcome: result.OutcomeWin},
	})
	service := NewResultService(memory.NewEventRepository(nil), teamRepo, memory.NewPlayerRepository(nil), resultRepo, nil, nil)

	// Coach only manages team-1 directly but results expand club-wide.
	coach := user.User{ID: "coach-1", Email: "coach@example.test", Roles: []user.Role{user.RoleCoach}, ClubID: "club-1", TeamIDs: []string{"team-1"}}
	got, err := service.ListVisible(context.Background(), coach)
	if err != nil {
		t.Fatalf("ListVisible error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("coach should see every club result, got %d", len(got))
	}
}

func TestResultService_RecomputeClub_RepairsDrift(t *testing.T) {
	t.Parallel()

	teamRepo := memory.NewTeamRepository([]team.Team{
		// Drifted counters: stored 5 wins, history says 1 win 1 loss.
		{ID: "team-1", ClubID: "club-1", Name: "U10", AgeGroup: team.AgeGroupU10, Code: "AAAABBBB", Wins: 5},
		{ID: "team-2", ClubID: "club-1", Name: "U12", AgeGroup: team.AgeGroupU12, Code: "CCCCDDDD", Losses: 3},
	})
	resultRepo := memory.NewResultRepository([]result.MatchResult{
		{FixtureID: "fx-1", TeamID: "team-1", HomeTeamGoals: 1, IsHomeFixture: true, Outcome: result.OutcomeWin},
		{FixtureID: "fx-2", TeamID: "team-1", AwayTeamGoals: 2, IsHomeFixture: true, Outcome: result.OutcomeLose},
	})
	service := NewResultService(memory.NewEventRepository(nil), teamRepo, memory.NewPlayerRepository(nil), resultRepo, nil, nil)

	summary, err := service.RecomputeClub(context.Background(), "club-1", 2)
	if err != nil {
		t.Fatalf("RecomputeClub error: %v", err)
	}
	if summary.TeamCount != 2 || summary.FailedCount != 0 || summary.SuccessCount != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	one, _, _ := teamRepo.GetByID(context.Background(), "team-1")
	if one.Wins != 1 || one.Draws != 0 || one.Losses != 1 {
		t.Fatalf("team-1 not repaired: %d/%d/%d", one.Wins, one.Draws, one.Losses)
	}
	two, _, _ := teamRepo.GetByID(context.Background(), "team-2")
	if two.Wins != 0 || two.Draws != 0 || two.Losses != 0 {
		t.Fatalf("team-2 with no results should be zeroed: %d/%d/%d", two.Wins, two.Draws, two.Losses)
	}
}
