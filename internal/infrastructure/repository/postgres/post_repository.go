package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joehodgson0/teamhub/internal/domain/post"
	qb "github.com/joehodgson0/teamhub/internal/platform/querybuilder"
)

type postTableModel struct {
	ID         string    `db:"id"`
	Type       string    `db:"type"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	AuthorID   string    `db:"author_id"`
	AuthorName string    `db:"author_name"`
	AuthorRole string    `db:"author_role"`
	TeamID     string    `db:"team_id"`
	ClubID     string    `db:"club_id"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m postTableModel) toDomain() post.Post {
	return post.Post{
		ID:         m.ID,
		Type:       post.Type(m.Type),
		Title:      m.Title,
		Content:    m.Content,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		AuthorRole: m.AuthorRole,
		TeamID:     m.TeamID,
		ClubID:     m.ClubID,
		CreatedAt:  m.CreatedAt,
	}
}

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]post.Post, error) {
	values := make([]any, 0, len(teamIDs))
	for _, id := range teamIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("posts").
		Where(qb.In("team_id", values)).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select posts by teams query: %w", err)
	}

	return r.selectPosts(ctx, query, args)
}

func (r *PostRepository) ListClubWide(ctx context.Context, clubID string) ([]post.Post, error) {
	query, args, err := qb.Select("*").From("posts").
		Where(
			qb.Eq("club_id", clubID),
			qb.Eq("team_id", ""),
		).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club posts query: %w", err)
	}

	return r.selectPosts(ctx, query, args)
}

func (r *PostRepository) selectPosts(ctx context.Context, query string, args []any) ([]post.Post, error) {
	var rows []postTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}

	out := make([]post.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	query, args, err := qb.InsertInto("posts").
		Columns("id", "type", "title", "content", "author_id", "author_name", "author_role", "team_id", "club_id", "created_at").
		Values(p.ID, string(p.Type), p.Title, p.Content, p.AuthorID, p.AuthorName, p.AuthorRole, p.TeamID, p.ClubID, p.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert post query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}
