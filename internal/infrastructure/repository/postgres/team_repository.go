package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/joehodgson0/teamhub/internal/domain/team"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	return r.getByColumn(ctx, "id", id)
}

func (r *TeamRepository) GetByCode(ctx context.Context, code string) (team.Team, bool, error) {
	return r.getByColumn(ctx, "code", strings.ToUpper(code))
}

func (r *TeamRepository) getByColumn(ctx context.Context, column, value string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq(column, value)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by %s: %w", column, err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []string) ([]team.Team, error) {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("teams").
		Where(qb.In("id", values)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by ids query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by ids: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) ListByClub(ctx context.Context, clubID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("club_id", clubID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by club query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by club: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertInto("teams").
		Columns("id", "club_id", "name", "age_group", "code", "player_ids", "wins", "draws", "losses").
		Values(t.ID, t.ClubID, t.Name, string(t.AgeGroup), t.Code, pq.StringArray(t.PlayerIDs), t.Wins, t.Draws, t.Losses).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	query, args, err := qb.Update("teams").
		Set("club_id", t.ClubID).
		Set("name", t.Name).
		Set("age_group", string(t.AgeGroup)).
		Set("code", t.Code).
		Set("player_ids", pq.StringArray(t.PlayerIDs)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", t.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	return nil
}

func (r *TeamRepository) UpdateRecord(ctx context.Context, teamID string, wins, draws, losses int) error {
	query, args, err := qb.Update("teams").
		Set("wins", wins).
		Set("draws", draws).
		Set("losses", losses).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team record query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team record: %w", err)
	}

	return nil
}
