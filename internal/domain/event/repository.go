package event

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Event, bool, error)
	ListByTeams(ctx context.Context, teamIDs []string) ([]Event, error)
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	// SetAvailability overwrites one player's availability entry.
	SetAvailability(ctx context.Context, eventID, playerID string, status Availability) error
}
