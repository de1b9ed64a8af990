package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/internal/usecase"
	"go-golf-advising-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTestimonialRepo struct {
	mock.Mock
}

func (m *MockTestimonialRepo) List(ctx context.Context, params *domain.TestimonialListParams) ([]domain.Testimonial, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Testimonial), args.Int(1), args.Error(2)
}

func (m *MockTestimonialRepo) Create(ctx context.Context, item *domain.Testimonial) error {
	return m.Called(ctx, item).Error(0)
}

func TestTestimonialListNormalizesParams(t *testing.T) {
	mockRepo := new(MockTestimonialRepo)
	uc := usecase.NewTestimonialUsecase(mockRepo, validator.New())

	var seen *domain.TestimonialListParams
	mockRepo.On("List", mock.Anything, mock.AnythingOfType("*domain.TestimonialListParams")).
		Run(func(args mock.Arguments) {
			seen = args.Get(1).(*domain.TestimonialListParams)
		}).Return([]domain.Testimonial{}, 0, nil)

	_, _, err := uc.List(context.Background(), &domain.TestimonialListParams{
		Sort:      "bogus",
		Order:     "sideways",
		MinRating: 9,
		Page:      -3,
		PageSize:  500,
	})
	require.NoError(t, err)
	require.NotNil(t, seen)

	assert.Equal(t, "date", seen.Sort)
	assert.Equal(t, "desc", seen.Order)
	assert.Equal(t, 5, seen.MinRating)
	assert.Equal(t, 1, seen.Page)
	assert.Equal(t, 50, seen.PageSize)
}

func TestTestimonialCreateValidation(t *testing.T) {
	mockRepo := new(MockTestimonialRepo)
	uc := usecase.NewTestimonialUsecase(mockRepo, validator.New())

	cases := []struct {
		name  string
		input domain.TestimonialInput
	}{
		{"missing user name", domain.TestimonialInput{Rating: 4, Feedback: "Great drills"}},
		{"missing feedback", domain.TestimonialInput{UserName: "Ava", Rating: 4}},
		{"rating too low", domain.TestimonialInput{UserName: "Ava", Rating: 0, Feedback: "Great drills"}},
		{"rating too high", domain.TestimonialInput{UserName: "Ava", Rating: 6, Feedback: "Great drills"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), &tc.input)
			require.Error(t, err)
			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestTestimonialCreateAssignsIDAndTimestamp(t *testing.T) {
	mockRepo := new(MockTestimonialRepo)
	uc := usecase.NewTestimonialUsecase(mockRepo, validator.New())

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Testimonial")).Return(nil)

	created, err := uc.Create(context.Background(), &domain.TestimonialInput{
		UserName: "Ava",
		Rating:   5,
		Feedback: "Finally broke 80!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.SubmittedAt.IsZero())
	assert.Equal(t, "Ava", created.UserName)
	mockRepo.AssertExpectations(t)
}
