package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joehodgson0/teamhub/internal/domain/award"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type awardTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Title     string    `db:"title"`
	Recipient string    `db:"recipient"`
	Month     int       `db:"month"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}

type AwardRepository struct {
	db *sqlx.DB
}

func NewAwardRepository(db *sqlx.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) ListByTeam(ctx context.Context, teamID string) ([]award.Award, error) {
	query, args, err := qb.Select("*").From("awards").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("year DESC", "month DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select awards query: %w", err)
	}

	var rows []awardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select awards by team: %w", err)
	}

	out := make([]award.Award, 0, len(rows))
	for _, row := range rows {
		out = append(out, award.Award{
			ID:        row.ID,
			TeamID:    row.TeamID,
			Title:     row.Title,
			Recipient: row.Recipient,
			Month:     row.Month,
			Year:      row.Year,
		})
	}

	return out, nil
}
