package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joehodgson0/teamhub/internal/domain/club"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type clubTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Code         string    `db:"code"`
	TotalTeams   int       `db:"total_teams"`
	TotalPlayers int       `db:"total_players"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m clubTableModel) toDomain() club.Club {
	return club.Club{
		ID:           m.ID,
		Name:         m.Name,
		Code:         m.Code,
		TotalTeams:   m.TotalTeams,
		TotalPlayers: m.TotalPlayers,
	}
}

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (club.Club, bool, error) {
	return r.getByColumn(ctx, "id", id)
}

func (r *ClubRepository) GetByCode(ctx context.Context, code string) (club.Club, bool, error) {
	return r.getByColumn(ctx, "code", strings.ToUpper(code))
}

func (r *ClubRepository) getByColumn(ctx context.Context, column, value string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Eq(column, value)).
		Limit(1).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club by %s: %w", column, err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubRepository) Create(ctx context.Context, c club.Club) error {
	query, args, err := qb.InsertInto("clubs").
		Columns("id", "name", "code", "total_teams", "total_players").
		Values(c.ID, c.Name, c.Code, c.TotalTeams, c.TotalPlayers).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert club: %w", err)
	}

	return nil
}

func (r *ClubRepository) Update(ctx context.Context, c club.Club) error {
	query, args, err := qb.Update("clubs").
		Set("name", c.Name).
		Set("code", c.Code).
		Set("total_teams", c.TotalTeams).
		Set("total_players", c.TotalPlayers).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", c.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update club: %w", err)
	}

	return nil
}
