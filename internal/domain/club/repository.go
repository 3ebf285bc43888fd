package club

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Club, bool, error)
	GetByCode(ctx context.Context, code string) (Club, bool, error)
	Create(ctx context.Context, c Club) error
	Update(ctx context.Context, c Club) error
}
