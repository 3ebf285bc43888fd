package award

import "context"

type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Award, error)
}
