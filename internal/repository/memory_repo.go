package repository

import (
	"context"
	"sync"

	"petnutricare/internal/model"
)

// memoryUserRepository keeps users in process memory. It is the fallback
// store when the database is unreachable; everything in it is lost on
// restart. Handlers run concurrently, so access is guarded by an RWMutex.
type memoryUserRepository struct {
	mu      sync.RWMutex
	users   []model.User
	byEmail map[string]int
}

// NewMemoryUserRepository creates an empty in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{byEmail: make(map[string]int)}
}

// Create inserts the user if the email is not already present. The check and
// the insert happen under one write lock, so duplicate registrations cannot
// race past each other.
func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return ErrEmailTaken
	}
	r.byEmail[user.Email] = len(r.users)
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	user := r.users[idx]
	return &user, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
