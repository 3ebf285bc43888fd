package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/joehodgson0/teamhub/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepository(users []user.User) *UserRepository {
	r := &UserRepository{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
	for _, item := range users {
		r.byID[item.ID] = item
		r.byEmail[strings.ToLower(item.Email)] = item.ID
	}

	return r
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, false, nil
	}
	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[u.ID] = u
	r.byEmail[strings.ToLower(u.Email)] = u.ID
	return nil
}

func (r *UserRepository) Update(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[u.ID] = u
	r.byEmail[strings.ToLower(u.Email)] = u.ID
	return nil
}
