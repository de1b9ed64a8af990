package memory

import (
	"context"

	"go-golf-advising-backend/internal/domain"

	"github.com/google/uuid"
)

type profileRepo struct {
	store *Store
}

func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepo{store: store}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return cloneProfile(r.store.profiles[userID]), nil
}

func (r *profileRepo) Upsert(ctx context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.profiles[userID]
	if !ok {
		existing = &domain.Profile{
			ID:     uuid.NewString(),
			UserID: userID,
		}
		r.store.profiles[userID] = existing
	}

	applyPatch(existing, patch)
	return cloneProfile(existing), nil
}

// applyPatch merges the non-nil patch fields into the profile in place.
func applyPatch(p *domain.Profile, patch *domain.ProfilePatch) {
	if patch == nil {
		return
	}
	if patch.Handicap != nil {
		p.Handicap = patch.Handicap
	}
	if patch.Goals != nil {
		p.Goals = patch.Goals
	}
	if patch.Equipment != nil {
		p.Equipment = patch.Equipment
	}
	if patch.PlayFrequency != nil {
		p.PlayFrequency = patch.PlayFrequency
	}
	if patch.OnboardingCompleted != nil {
		p.OnboardingCompleted = *patch.OnboardingCompleted
	}
	if patch.OnboardingStep != nil {
		p.OnboardingStep = *patch.OnboardingStep
	}
}
