package memory

import (
	"context"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/player"
)

type PlayerRepository struct {
	mu   sync.RWMutex
	byID map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{byID: make(map[string]player.Player)}
	for _, item := range players {
		r.byID[item.ID] = item
	}

	return r
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *PlayerRepository) ListByParent(_ context.Context, parentID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, item := range r.byID {
		if item.ParentID == parentID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, item := range r.byID {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.ID] = p
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.ID] = p
	return nil
}
