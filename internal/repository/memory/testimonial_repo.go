package memory

import (
	"context"
	"sort"

	"go-golf-advising-backend/internal/domain"
)

type testimonialRepo struct {
	store *Store
}

func NewTestimonialRepository(store *Store) domain.TestimonialRepository {
	return &testimonialRepo{store: store}
}

func (r *testimonialRepo) List(ctx context.Context, params *domain.TestimonialListParams) ([]domain.Testimonial, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	filtered := make([]domain.Testimonial, 0, len(r.store.testimonials))
	for _, t := range r.store.testimonials {
		if t.Rating >= params.MinRating {
			filtered = append(filtered, t)
		}
	}

	asc := params.Order == "asc"
	sort.SliceStable(filtered, func(i, j int) bool {
		if params.Sort == "rating" {
			if asc {
				return filtered[i].Rating < filtered[j].Rating
			}
			return filtered[i].Rating > filtered[j].Rating
		}
		if asc {
			return filtered[i].SubmittedAt.Before(filtered[j].SubmittedAt)
		}
		return filtered[i].SubmittedAt.After(filtered[j].SubmittedAt)
	})

	total := len(filtered)
	start := (params.Page - 1) * params.PageSize
	if start >= total {
		return []domain.Testimonial{}, total, nil
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	page := make([]domain.Testimonial, end-start)
	copy(page, filtered[start:end])
	return page, total, nil
}

func (r *testimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.testimonials = append(r.store.testimonials, *t)
	return nil
}
