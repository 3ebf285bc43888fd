package post

import "context"

type Repository interface {
	ListByTeams(ctx context.Context, teamIDs []string) ([]Post, error)
	ListClubWide(ctx context.Context, clubID string) ([]Post, error)
	Create(ctx context.Context, p Post) error
}
