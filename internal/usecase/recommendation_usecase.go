package usecase

import (
	"context"
	"strings"

	"go-golf-advising-backend/internal/domain"
)

// defaultHandicap is assumed when a golfer has not recorded one yet.
const defaultHandicap = 20

type recommendationUsecase struct {
	profiles  domain.ProfileRepository
	generator domain.StructuredGenerator
}

func NewRecommendationUsecase(profiles domain.ProfileRepository, generator domain.StructuredGenerator) domain.RecommendationUsecase {
	return &recommendationUsecase{
		profiles:  profiles,
		generator: generator,
	}
}

func (u *recommendationUsecase) GenerateRecommendations(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &domain.Profile{}
	}

	return buildRecommendations(profile), nil
}

// buildRecommendations applies the tip rules in a fixed order. The handicap
// tier always contributes exactly one entry; the keyword rules are additive
// and never suppress each other.
func buildRecommendations(profile *domain.Profile) []domain.Recommendation {
	recs := []domain.Recommendation{}

	h := defaultHandicap
	if profile.Handicap != nil {
		h = *profile.Handicap
	}

	switch {
	case h <= 10:
		recs = append(recs, domain.Recommendation{Text: "Focus on course management and precision wedges."})
	case h <= 20:
		recs = append(recs, domain.Recommendation{Text: "Practice consistency: mid-irons and putting drills."})
	default:
		recs = append(recs, domain.Recommendation{Text: "Build fundamentals: driver tempo, short game basics."})
	}

	if profile.Goals != nil && strings.Contains(strings.ToLower(*profile.Goals), "distance") {
		recs = append(recs, domain.Recommendation{Text: "Add speed training twice weekly with supervised drills."})
	}

	if profile.Equipment != nil && strings.Contains(strings.ToLower(*profile.Equipment), "blade") {
		recs = append(recs, domain.Recommendation{Text: "Consider cavity-back irons for forgiveness during improvement."})
	}

	return recs
}

// GenerateStructured trusts the generator's contract: it always answers with
// a structurally valid object, so there is nothing to validate or retry here.
func (u *recommendationUsecase) GenerateStructured(ctx context.Context, payload *domain.WizardPayload) *domain.StructuredRecommendations {
	return u.generator.Generate(ctx, payload)
}
