package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	byID   map[string]team.Team
	byCode map[string]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{
		byID:   make(map[string]team.Team),
		byCode: make(map[string]string),
	}
	for _, item := range teams {
		r.byID[item.ID] = cloneTeam(item)
		r.byCode[strings.ToUpper(item.Code)] = item.ID
	}

	return r
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return cloneTeam(item), ok, nil
}

func (r *TeamRepository) GetByCode(_ context.Context, code string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[strings.ToUpper(code)]
	if !ok {
		return team.Team{}, false, nil
	}
	item, ok := r.byID[id]
	return cloneTeam(item), ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, ids []string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.byID[id]; ok {
			out = append(out, cloneTeam(item))
		}
	}

	return out, nil
}

func (r *TeamRepository) ListByClub(_ context.Context, clubID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []team.Team
	for _, item := range r.byID {
		if item.ClubID == clubID {
			out = append(out, cloneTeam(item))
		}
	}

	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[t.ID] = cloneTeam(t)
	r.byCode[strings.ToUpper(t.Code)] = t.ID
	return nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[t.ID] = cloneTeam(t)
	r.byCode[strings.ToUpper(t.Code)] = t.ID
	return nil
}

func (r *TeamRepository) UpdateRecord(_ context.Context, teamID string, wins, draws, losses int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[teamID]
	if !ok {
		return fmt.Errorf("team %s not found", teamID)
	}
	item.Wins = wins
	item.Draws = draws
	item.Losses = losses
	r.byID[teamID] = item
	return nil
}

func cloneTeam(t team.Team) team.Team {
	out := t
	if t.PlayerIDs != nil {
		out.PlayerIDs = append([]string(nil), t.PlayerIDs...)
	}
	return out
}
