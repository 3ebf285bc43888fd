package memory

import (
	"context"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/award"
)

type AwardRepository struct {
	mu     sync.RWMutex
	byTeam map[string][]award.Award
}

func NewAwardRepository(awards []award.Award) *AwardRepository {
	byTeam := make(map[string][]award.Award)
	for _, item := range awards {
		byTeam[item.TeamID] = append(byTeam[item.TeamID], item)
	}

	return &AwardRepository{byTeam: byTeam}
}

func (r *AwardRepository) ListByTeam(_ context.Context, teamID string) ([]award.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byTeam[teamID]
	out := make([]award.Award, 0, len(items))
	out = append(out, items...)

	return out, nil
}
