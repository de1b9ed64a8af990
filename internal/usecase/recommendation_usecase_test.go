package usecase_test

import (
	"context"
	"testing"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, payload *domain.WizardPayload) *domain.StructuredRecommendations {
	args := m.Called(ctx, payload)
	return args.Get(0).(*domain.StructuredRecommendations)
}

func recommendationTexts(t *testing.T, profile *domain.Profile) []string {
	t.Helper()

	mockRepo := new(MockProfileRepo)
	if profile == nil {
		mockRepo.On("GetByUserID", mock.Anything, "a@example.com").Return(nil, nil)
	} else {
		mockRepo.On("GetByUserID", mock.Anything, "a@example.com").Return(profile, nil)
	}

	uc := usecase.NewRecommendationUsecase(mockRepo, new(MockGenerator))
	items, err := uc.GenerateRecommendations(context.Background(), "a@example.com")
	require.NoError(t, err)

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}

func TestRecommendationTiers(t *testing.T) {
	t.Run("low handicap gets precision tip", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{Handicap: intPtr(5)})
		assert.Equal(t, []string{"Focus on course management and precision wedges."}, texts)
	})

	t.Run("mid handicap gets consistency tip", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{Handicap: intPtr(15)})
		assert.Equal(t, []string{"Practice consistency: mid-irons and putting drills."}, texts)
	})

	t.Run("high handicap gets fundamentals tip", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{Handicap: intPtr(30)})
		assert.Equal(t, []string{"Build fundamentals: driver tempo, short game basics."}, texts)
	})

	t.Run("missing handicap defaults to 20, the mid tier", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{})
		assert.Equal(t, []string{"Practice consistency: mid-irons and putting drills."}, texts)
	})

	t.Run("missing profile behaves as empty profile", func(t *testing.T) {
		texts := recommendationTexts(t, nil)
		assert.Equal(t, []string{"Practice consistency: mid-irons and putting drills."}, texts)
	})
}

func TestRecommendationKeywordRules(t *testing.T) {
	t.Run("distance goal appends speed tip", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{Goals: strPtr("Increase Distance off the tee")})
		assert.Contains(t, texts, "Add speed training twice weekly with supervised drills.")
	})

	t.Run("blade equipment appends forgiveness tip", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{Equipment: strPtr("Mizuno BLADE irons")})
		assert.Contains(t, texts, "Consider cavity-back irons for forgiveness during improvement.")
	})

	t.Run("rules are additive in fixed order", func(t *testing.T) {
		texts := recommendationTexts(t, &domain.Profile{
			Handicap:  intPtr(30),
			Goals:     strPtr("more distance"),
			Equipment: strPtr("blade irons"),
		})
		assert.Equal(t, []string{
			"Build fundamentals: driver tempo, short game basics.",
			"Add speed training twice weekly with supervised drills.",
			"Consider cavity-back irons for forgiveness during improvement.",
		}, texts)
	})
}

func TestGenerateStructuredDelegates(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	mockGen := new(MockGenerator)

	payload := &domain.WizardPayload{Handicap: intPtr(12)}
	expected := &domain.StructuredRecommendations{}
	mockGen.On("Generate", mock.Anything, payload).Return(expected)

	uc := usecase.NewRecommendationUsecase(mockRepo, mockGen)
	got := uc.GenerateStructured(context.Background(), payload)

	// The command passes the payload through and trusts the generator's
	// result verbatim.
	assert.Same(t, expected, got)
	mockGen.AssertExpectations(t)
}
