package memory

import (
	"context"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/result"
)

type ResultRepository struct {
	mu        sync.RWMutex
	byFixture map[string]result.MatchResult
}

func NewResultRepository(results []result.MatchResult) *ResultRepository {
	r := &ResultRepository{byFixture: make(map[string]result.MatchResult)}
	for _, item := range results {
		r.byFixture[item.FixtureID] = cloneResult(item)
	}

	return r
}

func (r *ResultRepository) GetByFixture(_ context.Context, fixtureID string) (result.MatchResult, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byFixture[fixtureID]
	return cloneResult(item), ok, nil
}

func (r *ResultRepository) ListByTeam(_ context.Context, teamID string) ([]result.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []result.MatchResult
	for _, item := range r.byFixture {
		if item.TeamID == teamID {
			out = append(out, cloneResult(item))
		}
	}

	return out, nil
}

func (r *ResultRepository) ListByTeams(_ context.Context, teamIDs []string) ([]result.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	var out []result.MatchResult
	for _, item := range r.byFixture {
		if _, ok := wanted[item.TeamID]; ok {
			out = append(out, cloneResult(item))
		}
	}

	return out, nil
}

func (r *ResultRepository) Upsert(_ context.Context, item result.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byFixture[item.FixtureID] = cloneResult(item)
	return nil
}

func cloneResult(item result.MatchResult) result.MatchResult {
	out := item
	if item.PlayerStats != nil {
		out.PlayerStats = make(map[string]result.StatLine, len(item.PlayerStats))
		for k, v := range item.PlayerStats {
			out.PlayerStats[k] = v
		}
	}
	return out
}
