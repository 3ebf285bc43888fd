package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joehodgson0/teamhub/internal/domain/result"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetByFixture(ctx context.Context, fixtureID string) (result.MatchResult, bool, error) {
	query, args, err := qb.Select("*").From("match_results").
		Where(qb.Eq("fixture_id", fixtureID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return result.MatchResult{}, false, fmt.Errorf("build select result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.MatchResult{}, false, nil
		}
		return result.MatchResult{}, false, fmt.Errorf("select result: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return result.MatchResult{}, false, err
	}

	return out, true, nil
}

func (r *ResultRepository) ListByTeam(ctx context.Context, teamID string) ([]result.MatchResult, error) {
	return r.ListByTeams(ctx, []string{teamID})
}

func (r *ResultRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]result.MatchResult, error) {
	values := make([]any, 0, len(teamIDs))
	for _, id := range teamIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("match_results").
		Where(qb.In("team_id", values)).
		OrderBy("updated_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results by teams query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results by teams: %w", err)
	}

	out := make([]result.MatchResult, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

// Upsert keeps one row per fixture: a resubmission replaces every stored
// field while the original created_at survives.
func (r *ResultRepository) Upsert(ctx context.Context, item result.MatchResult) error {
	stats, err := encodePlayerStats(item.PlayerStats)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("match_results").
		Columns("fixture_id", "team_id", "home_team_goals", "away_team_goals", "is_home_fixture", "outcome", "player_stats", "created_at", "updated_at").
		Values(item.FixtureID, item.TeamID, item.HomeTeamGoals, item.AwayTeamGoals, item.IsHomeFixture, string(item.Outcome), stats, item.CreatedAt, item.UpdatedAt).
		Suffix(`ON CONFLICT (fixture_id)
DO UPDATE SET
    team_id = EXCLUDED.team_id,
    home_team_goals = EXCLUDED.home_team_goals,
    away_team_goals = EXCLUDED.away_team_goals,
    is_home_fixture = EXCLUDED.is_home_fixture,
    outcome = EXCLUDED.outcome,
    player_stats = EXCLUDED.player_stats,
    updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert result fixture=%s: %w", item.FixtureID, err)
	}

	return nil
}
