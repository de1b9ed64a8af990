package usecase

import (
	"context"
	"time"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/apperror"
	"go-golf-advising-backend/pkg/logger"
	"go-golf-advising-backend/pkg/security"
	"go-golf-advising-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   security.PasswordHasher
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher security.PasswordHasher, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		validate: validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Summary(err))
	}

	// Case-sensitive exact match; the storage backend's unique index is the
	// authoritative guard against the concurrent-register race.
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	passwordHash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// VerifyCredentials never reports why verification failed: malformed input,
// unknown email and wrong password all look the same to the caller.
func (u *authUsecase) VerifyCredentials(ctx context.Context, input *domain.LoginInput) *domain.Identity {
	if input == nil || u.validate.Struct(input) != nil {
		return nil
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil || user == nil || user.PasswordHash == "" {
		return nil
	}

	if !u.hasher.Compare(input.Password, user.PasswordHash) {
		return nil
	}

	return &domain.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}
}
