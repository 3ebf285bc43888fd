package team

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Team, bool, error)
	GetByCode(ctx context.Context, code string) (Team, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Team, error)
	ListByClub(ctx context.Context, clubID string) ([]Team, error)
	Create(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	// UpdateRecord persists only the derived win/draw/loss counters.
	UpdateRecord(ctx context.Context, teamID string, wins, draws, losses int) error
}
