package memory

import (
	"context"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/post"
)

type PostRepository struct {
	mu   sync.RWMutex
	byID map[string]post.Post
}

func NewPostRepository(posts []post.Post) *PostRepository {
	r := &PostRepository{byID: make(map[string]post.Post)}
	for _, item := range posts {
		r.byID[item.ID] = item
	}

	return r
}

func (r *PostRepository) ListByTeams(_ context.Context, teamIDs []string) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	var out []post.Post
	for _, item := range r.byID {
		if item.TeamID == "" {
			continue
		}
		if _, ok := wanted[item.TeamID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PostRepository) ListClubWide(_ context.Context, clubID string) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []post.Post
	for _, item := range r.byID {
		if item.IsClubWide() && item.ClubID == clubID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PostRepository) Create(_ context.Context, p post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.ID] = p
	return nil
}
