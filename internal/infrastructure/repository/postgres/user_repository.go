package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/joehodgson0/teamhub/internal/domain/user"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	return r.getByColumn(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getByColumn(ctx, "email", strings.ToLower(email))
}

func (r *UserRepository) getByColumn(ctx context.Context, column, value string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq(column, value)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user by %s: %w", column, err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	query, args, err := qb.InsertInto("users").
		Columns("id", "email", "password_hash", "roles", "club_id", "team_ids").
		Values(u.ID, strings.ToLower(u.Email), u.PasswordHash, rolesToStrings(u.Roles), u.ClubID, pq.StringArray(u.TeamIDs)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	query, args, err := qb.Update("users").
		Set("email", strings.ToLower(u.Email)).
		Set("password_hash", u.PasswordHash).
		Set("roles", rolesToStrings(u.Roles)).
		Set("club_id", u.ClubID).
		Set("team_ids", pq.StringArray(u.TeamIDs)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", u.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}
