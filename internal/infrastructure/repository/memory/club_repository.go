package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/club"
)

type ClubRepository struct {
	mu     sync.RWMutex
	byID   map[string]club.Club
	byCode map[string]string
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	r := &ClubRepository{
		byID:   make(map[string]club.Club),
		byCode: make(map[string]string),
	}
	for _, item := range clubs {
		r.byID[item.ID] = item
		r.byCode[strings.ToUpper(item.Code)] = item.ID
	}

	return r
}

func (r *ClubRepository) GetByID(_ context.Context, id string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *ClubRepository) GetByCode(_ context.Context, code string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[strings.ToUpper(code)]
	if !ok {
		return club.Club{}, false, nil
	}
	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *ClubRepository) Create(_ context.Context, c club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[c.ID] = c
	r.byCode[strings.ToUpper(c.Code)] = c.ID
	return nil
}

func (r *ClubRepository) Update(_ context.Context, c club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[c.ID] = c
	r.byCode[strings.ToUpper(c.Code)] = c.ID
	return nil
}
