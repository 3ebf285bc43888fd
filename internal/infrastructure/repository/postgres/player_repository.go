package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joehodgson0/teamhub/internal/domain/player"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	DateOfBirth time.Time `db:"date_of_birth"`
	TeamID      string    `db:"team_id"`
	ParentID    string    `db:"parent_id"`
	Attendance  int       `db:"attendance"`
	TotalEvents int       `db:"total_events"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		Name:        m.Name,
		DateOfBirth: m.DateOfBirth,
		TeamID:      m.TeamID,
		ParentID:    m.ParentID,
		Attendance:  m.Attendance,
		TotalEvents: m.TotalEvents,
	}
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListByParent(ctx context.Context, parentID string) ([]player.Player, error) {
	return r.listByColumn(ctx, "parent_id", parentID)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return r.listByColumn(ctx, "team_id", teamID)
}

func (r *PlayerRepository) listByColumn(ctx context.Context, column, value string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq(column, value)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by %s: %w", column, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "date_of_birth", "team_id", "parent_id", "attendance", "total_events").
		Values(p.ID, p.Name, p.DateOfBirth, p.TeamID, p.ParentID, p.Attendance, p.TotalEvents).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("date_of_birth", p.DateOfBirth).
		Set("team_id", p.TeamID).
		Set("attendance", p.Attendance).
		Set("total_events", p.TotalEvents).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}
