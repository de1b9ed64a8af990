package memory

import (
	"context"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/apperror"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.Email]; exists {
		return apperror.Conflict("User with this email already exists")
	}
	r.store.users[user.Email] = cloneUser(user)
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return cloneUser(r.store.users[email]), nil
}
