package usecase

import (
	"context"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/apperror"
	"go-golf-advising-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

// GetProfile is a plain read-through; a nil profile just means onboarding
// has not started.
func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return u.repo.GetByUserID(ctx, userID)
}

func (u *profileUsecase) UpsertProfile(ctx context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error) {
	if patch == nil {
		return nil, apperror.BadRequest("Invalid input")
	}
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.BadRequest(validation.Summary(err))
	}

	return u.repo.Upsert(ctx, userID, patch)
}
