package postgres

import (
	"context"
	"errors"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT id, user_id, handicap, goals, equipment, play_frequency,
                     onboarding_completed, onboarding_step
              FROM profiles WHERE user_id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Handicap, &p.Goals, &p.Equipment, &p.PlayFrequency,
		&p.OnboardingCompleted, &p.OnboardingStep,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &p, nil
}

// Upsert merges the non-nil patch fields over the existing row, creating it
// on first write. COALESCE keeps columns untouched when the patch omits them.
func (r *profileRepo) Upsert(ctx context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error) {
	query := `INSERT INTO profiles
                (id, user_id, handicap, goals, equipment, play_frequency,
                 onboarding_completed, onboarding_step)
              VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, FALSE), COALESCE($8, 0))
              ON CONFLICT (user_id) DO UPDATE SET
                handicap             = COALESCE($3, profiles.handicap),
                goals                = COALESCE($4, profiles.goals),
                equipment            = COALESCE($5, profiles.equipment),
                play_frequency       = COALESCE($6, profiles.play_frequency),
                onboarding_completed = COALESCE($7, profiles.onboarding_completed),
                onboarding_step      = COALESCE($8, profiles.onboarding_step)
              RETURNING id, user_id, handicap, goals, equipment, play_frequency,
                        onboarding_completed, onboarding_step`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(), userID,
		patch.Handicap, patch.Goals, patch.Equipment, patch.PlayFrequency,
		patch.OnboardingCompleted, patch.OnboardingStep,
	).Scan(
		&p.ID, &p.UserID, &p.Handicap, &p.Goals, &p.Equipment, &p.PlayFrequency,
		&p.OnboardingCompleted, &p.OnboardingStep,
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &p, nil
}
