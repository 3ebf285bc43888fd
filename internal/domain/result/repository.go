package result

import "context"

type Repository interface {
	GetByFixture(ctx context.Context, fixtureID string) (MatchResult, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]MatchResult, error)
	ListByTeams(ctx context.Context, teamIDs []string) ([]MatchResult, error)
	// Upsert inserts or fully replaces the result for r.FixtureID.
	Upsert(ctx context.Context, r MatchResult) error
}
