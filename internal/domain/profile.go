package domain

import "context"

// Profile holds a golfer's onboarding data. UserID is the owner's email,
// unique per profile. Handicap and the free-text fields are optional until
// the onboarding wizard fills them in.
type Profile struct {
	ID                  string  `json:"id"`
	UserID              string  `json:"userId"`
	Handicap            *int    `json:"handicap"`
	Goals               *string `json:"goals"`
	Equipment           *string `json:"equipment"`
	PlayFrequency       *string `json:"playFrequency"`
	OnboardingCompleted bool    `json:"onboardingCompleted"`
	OnboardingStep      int     `json:"onboardingStep"`
}

// ProfilePatch is a partial update: nil fields are left untouched by an
// upsert, non-nil fields overwrite. The store does not enforce step
// monotonicity; callers own the wizard progression.
type ProfilePatch struct {
	Handicap            *int    `json:"handicap,omitempty" validate:"omitempty,min=0,max=54"`
	Goals               *string `json:"goals,omitempty" validate:"omitempty,max=500"`
	Equipment           *string `json:"equipment,omitempty" validate:"omitempty,max=500"`
	PlayFrequency       *string `json:"playFrequency,omitempty" validate:"omitempty,max=100"`
	OnboardingCompleted *bool   `json:"onboardingCompleted,omitempty"`
	OnboardingStep      *int    `json:"onboardingStep,omitempty" validate:"omitempty,min=0"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates the profile on first write (completed=false, step=0
	// defaults) and merges non-nil patch fields in place thereafter.
	Upsert(ctx context.Context, userID string, patch *ProfilePatch) (*Profile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpsertProfile(ctx context.Context, userID string, patch *ProfilePatch) (*Profile, error)
}
