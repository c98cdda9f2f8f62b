// Package persistence implements repository interfaces using specific storage backends.
// This is the outermost layer - it implements ports defined in the domain layer.
package persistence

import (
	"context"
	"sync"

	"github.com/rai/user-service-go/modules/users/domain"
)

// InMemoryRepository implements UserRepository using an ordered
// in-memory collection. All data is lost on process restart.
//
// Insertion order is preserved but carries no meaning beyond internal
// indexing. Lookups are linear scans; IDs are unique, so the first
// match is the only match. The mutex serializes mutations because the
// HTTP server handles requests on concurrent goroutines.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Add(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID() == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryRepository) Replace(ctx context.Context, id domain.UserID, profile domain.Profile) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID() == id {
			user.UpdateProfile(profile)
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryRepository) RemoveByID(ctx context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Compile-time interface check.
var _ domain.UserRepository = (*InMemoryRepository)(nil)
