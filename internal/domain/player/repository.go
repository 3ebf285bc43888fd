package player

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Player, bool, error)
	ListByParent(ctx context.Context, parentID string) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
}
