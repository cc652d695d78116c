// Package memory keeps users in process memory. It backs STORE_DRIVER=memory
// for local runs and the end-to-end router tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/foundever/reactions/internal/core/domain"
	"github.com/foundever/reactions/internal/core/ports"
)

// UserRepository implements ports.UserRepository on a map keyed by user id.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]*domain.User
	byUsername map[string]string
}

// NewUserRepository returns an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]*domain.User),
		byUsername: make(map[string]string),
	}
}

func clone(u *domain.User) *domain.User {
	c := *u
	if u.LastReactionAt != nil {
		ts := *u.LastReactionAt
		c.LastReactionAt = &ts
	}
	return &c
}

func (r *UserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserDoesNotExist
	}
	return clone(r.byID[id]), nil
}

// List returns matching users ordered by creation time.
func (r *UserRepository) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		if filter.Username != "" && u.Username != filter.Username {
			continue
		}
		out = append(out, clone(u))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Create enforces username uniqueness the way the SQL unique index does.
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byUsername[user.Username]; taken {
		return &domain.UsernameAlreadyExistsError{Username: user.Username}
	}
	r.byID[user.ID] = clone(user)
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserDoesNotExist
	}
	r.byID[user.ID] = clone(user)
	return nil
}

func (r *UserRepository) Delete(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrUserDoesNotExist
	}
	delete(r.byUsername, stored.Username)
	delete(r.byID, user.ID)
	return nil
}
