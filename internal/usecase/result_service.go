package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/joehodgson0/teamhub/internal/domain/event"
	"github.com/joehodgson0/teamhub/internal/domain/player"
	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/domain/team"
	"github.com/joehodgson0/teamhub/internal/domain/user"
	"github.com/joehodgson0/teamhub/internal/domain/visibility"
	"github.com/joehodgson0/teamhub/internal/platform/logging"
)

// SubmitResultInput is the incoming payload for recording a fixture's
// scoreline and per-player contributions.
type SubmitResultInput struct {
	FixtureID     string
	TeamID        string
	HomeTeamGoals int
	AwayTeamGoals int
	PlayerStats   map[string]result.StatLine
}

// RecomputeSummary reports the outcome of a club-wide aggregate repair.
type RecomputeSummary struct {
	TeamCount    int `json:"team_count"`
	SuccessCount int `json:"success_count"`
	FailedCount  int `json:"failed_count"`
	WorkerCount  int `json:"worker_count"`
}

type ResultService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	resultRepo result.Repository
	membership membershipResolver
	notifier   Notifier
	logger     *logging.Logger
	now        func() time.Time
}

func NewResultService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	resultRepo result.Repository,
	notifier Notifier,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ResultService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		resultRepo: resultRepo,
		membership: membershipResolver{playerRepo: playerRepo, teamRepo: teamRepo},
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit records the result for a fixture. Submissions upsert: there is at
// most one result per fixture, and resubmitting replaces every stored field.
// All validation happens before any write; after the upsert the owning
// team's win/draw/loss counters are recomputed from its full result history
// rather than incremented, so the cache can never drift permanently even if
// an earlier recompute was lost.
func (s *ResultService) Submit(ctx context.Context, caller user.User, input SubmitResultInput) (result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Submit")
	defer span.End()

	input.FixtureID = strings.TrimSpace(input.FixtureID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.FixtureID == "" {
		return result.MatchResult{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return result.MatchResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	fixture, exists, err := s.eventRepo.GetByID(ctx, input.FixtureID)
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return result.MatchResult{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, input.FixtureID)
	}

	if !caller.ManagesTeam(input.TeamID) {
		return result.MatchResult{}, fmt.Errorf("%w: caller does not manage team %s", ErrForbidden, input.TeamID)
	}
	if input.TeamID != fixture.TeamID {
		return result.MatchResult{}, fmt.Errorf("%w: team mismatch", ErrInvalidInput)
	}

	existing, hasExisting, err := s.resultRepo.GetByFixture(ctx, input.FixtureID)
	if err != nil {
		return result.MatchResult{}, fmt.Errorf("get existing result: %w", err)
	}

	now := s.now().UTC()
	createdAt := now
	if hasExisting {
		createdAt = existing.CreatedAt
	}

	isHome := fixture.IsHomeFixture()
	r := result.MatchResult{
		FixtureID:     input.FixtureID,
		TeamID:        input.TeamID,
		HomeTeamGoals: input.HomeTeamGoals,
		AwayTeamGoals: input.AwayTeamGoals,
		IsHomeFixture: isHome,
		Outcome:       result.OutcomeFromScore(isHome, input.HomeTeamGoals, input.AwayTeamGoals),
		PlayerStats:   result.PruneStats(input.PlayerStats),
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}
	if err := r.Validate(); err != nil {
		return result.MatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.resultRepo.Upsert(ctx, r); err != nil {
		return result.MatchResult{}, fmt.Errorf("upsert match result: %w", err)
	}

	if err := s.recomputeTeam(ctx, r.TeamID); err != nil {
		return result.MatchResult{}, err
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"fixture_id", r.FixtureID,
		"team_id", r.TeamID,
		"outcome", r.Outcome,
		"resubmission", hasExisting,
	)

	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, "result.recorded", r); err != nil {
			s.logger.WarnContext(ctx, "result notification failed", "fixture_id", r.FixtureID, "error", err)
		}
	}

	return r, nil
}

// ListVisible returns the match results the caller is entitled to see,
// most recent first. Coaches see results for every team in their club;
// parents see results for teams their players are on.
func (s *ResultService) ListVisible(ctx context.Context, caller user.User) ([]result.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListVisible")
	defer span.End()

	m, err := s.membership.resolve(ctx, caller, true)
	if err != nil {
		return nil, err
	}

	scope := m.ResultScope()
	ids := make([]string, 0, len(scope))
	for id := range scope {
		ids = append(ids, id)
	}

	results, err := s.resultRepo.ListByTeams(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list results by teams: %w", err)
	}

	visible := visibility.FilterResults(m, results)
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].UpdatedAt.After(visible[j].UpdatedAt) })

	return visible, nil
}

// RecomputeClub re-tallies every team in a club from stored results. It is
// the repair path for counters that drifted because a process died between
// a result upsert and its recompute.
func (s *ResultService) RecomputeClub(ctx context.Context, clubID string, maxWorkers int) (RecomputeSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecomputeClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return RecomputeSummary{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByClub(ctx, clubID)
	if err != nil {
		return RecomputeSummary{}, fmt.Errorf("list teams by club: %w", err)
	}

	workers := maxWorkers
	if workers < 1 {
		workers = 4
	}
	if workers > len(teams) && len(teams) > 0 {
		workers = len(teams)
	}

	summary := RecomputeSummary{TeamCount: len(teams), WorkerCount: workers}
	if len(teams) == 0 {
		return summary, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return RecomputeSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var failed atomic.Int64
	for _, t := range teams {
		teamID := t.ID
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.recomputeTeam(ctx, teamID); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "team recompute failed", "team_id", teamID, "error", err)
			}
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
			s.logger.WarnContext(ctx, "team recompute not scheduled", "team_id", teamID, "error", submitErr)
		}
	}
	wg.Wait()

	summary.FailedCount = int(failed.Load())
	summary.SuccessCount = summary.TeamCount - summary.FailedCount

	return summary, nil
}

// recomputeTeam rescans the team's entire result history and persists the
// tally. Always a full rescan, never a delta: with concurrent submissions
// the last recompute to run still lands on the correct aggregate.
func (s *ResultService) recomputeTeam(ctx context.Context, teamID string) error {
	results, err := s.resultRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("list results for team: %w", err)
	}

	wins, draws, losses := result.Tally(results)
	if err := s.teamRepo.UpdateRecord(ctx, teamID, wins, draws, losses); err != nil {
		return fmt.Errorf("update team record: %w", err)
	}

	return nil
}
