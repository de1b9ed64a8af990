package domain

import (
	"context"
	"time"
)

type Testimonial struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Rating      int       `json:"rating"`
	Feedback    string    `json:"feedback"`
	Role        *string   `json:"role,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type TestimonialInput struct {
	UserName  string  `json:"userName" validate:"required"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Feedback  string  `json:"feedback" validate:"required"`
	Role      *string `json:"role,omitempty"`
}

// TestimonialListParams controls filtering, sorting and pagination.
// Zero values are replaced with the defaults (date/desc/1/1/10).
type TestimonialListParams struct {
	Sort      string `form:"sort"`
	Order     string `form:"order"`
	MinRating int    `form:"minRating"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

type TestimonialRepository interface {
	List(ctx context.Context, params *TestimonialListParams) ([]Testimonial, int, error)
	Create(ctx context.Context, t *Testimonial) error
}

type TestimonialUsecase interface {
	List(ctx context.Context, params *TestimonialListParams) ([]Testimonial, int, error)
	Create(ctx context.Context, input *TestimonialInput) (*Testimonial, error)
}
