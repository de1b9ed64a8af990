package postgres

import (
	"context"
	"fmt"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type testimonialRepo struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) domain.TestimonialRepository {
	return &testimonialRepo{db: db}
}

func (r *testimonialRepo) List(ctx context.Context, params *domain.TestimonialListParams) ([]domain.Testimonial, int, error) {
	// Sort column is chosen from a fixed set, never from raw input.
	orderCol := "submitted_at"
	if params.Sort == "rating" {
		orderCol = "rating"
	}
	dir := "DESC"
	if params.Order == "asc" {
		dir = "ASC"
	}

	query := fmt.Sprintf(`SELECT id, user_name, avatar_url, rating, feedback, role, submitted_at
              FROM testimonials WHERE rating >= $1
              ORDER BY %s %s
              LIMIT $2 OFFSET $3`, orderCol, dir)

	rows, err := r.db.Query(ctx, query, params.MinRating, params.PageSize, (params.Page-1)*params.PageSize)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	defer rows.Close()

	items := []domain.Testimonial{}
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.UserName, &t.AvatarURL, &t.Rating, &t.Feedback, &t.Role, &t.SubmittedAt); err != nil {
			return nil, 0, apperror.Internal(err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM testimonials WHERE rating >= $1`
	if err := r.db.QueryRow(ctx, countQuery, params.MinRating).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	return items, total, nil
}

func (r *testimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `INSERT INTO testimonials (id, user_name, avatar_url, rating, feedback, role, submitted_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, t.ID, t.UserName, t.AvatarURL, t.Rating, t.Feedback, t.Role, t.SubmittedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
