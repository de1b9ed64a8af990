package usecase

import (
	"context"
	"time"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/apperror"
	"go-golf-advising-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type testimonialUsecase struct {
	repo     domain.TestimonialRepository
	validate *validator.Validate
}

func NewTestimonialUsecase(repo domain.TestimonialRepository, validate *validator.Validate) domain.TestimonialUsecase {
	return &testimonialUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *testimonialUsecase) List(ctx context.Context, params *domain.TestimonialListParams) ([]domain.Testimonial, int, error) {
	normalizeListParams(params)
	return u.repo.List(ctx, params)
}

// normalizeListParams clamps query input to the supported ranges instead of
// rejecting it; the public listing endpoint is forgiving.
func normalizeListParams(p *domain.TestimonialListParams) {
	if p.Sort != "rating" {
		p.Sort = "date"
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
	if p.MinRating < 1 {
		p.MinRating = 1
	}
	if p.MinRating > 5 {
		p.MinRating = 5
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > 50 {
		p.PageSize = 50
	}
}

func (u *testimonialUsecase) Create(ctx context.Context, input *domain.TestimonialInput) (*domain.Testimonial, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Summary(err))
	}

	t := &domain.Testimonial{
		ID:          uuid.NewString(),
		UserName:    input.UserName,
		AvatarURL:   input.AvatarURL,
		Rating:      input.Rating,
		Feedback:    input.Feedback,
		Role:        input.Role,
		SubmittedAt: time.Now(),
	}

	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
