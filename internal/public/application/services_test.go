package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *domain.SurveyResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) FindByUserID(ctx context.Context, userID string) ([]domain.SurveyResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurveyResponse), args.Error(1)
}

func fixedClock() time.Time {
	return time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)
}

func TestSurveyCommandService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps and stores a valid submission", func(t *testing.T) {
		repo := new(MockResponseRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(r *domain.SurveyResponse) bool {
			return r.CreatedAt == "2024-04-01T09:30:00.000000Z" && r.Timestamp == r.CreatedAt
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.SurveyResponse).ID = "generated"
		}).Return(nil)

		svc := &surveyCommandService{repo: repo, now: fixedClock}
		got, err := svc.Submit(ctx, domain.Submission{
			Age: "25", Gender: "male", Frequency: "daily", Satisfaction: "5",
			UserID: "u1", DisplayName: "",
		})

		require.NoError(t, err)
		assert.Equal(t, "generated", got.ID)
		require.NotNil(t, got.UserID)
		assert.Equal(t, "u1", *got.UserID)
		assert.Nil(t, got.DisplayName)
		assert.Nil(t, got.Feedback)
		repo.AssertExpectations(t)
	})

	t.Run("validation failure skips the store", func(t *testing.T) {
		repo := new(MockResponseRepository)
		svc := NewSurveyCommandService(repo)

		_, err := svc.Submit(ctx, domain.Submission{Age: "25", Gender: "alien", Frequency: "daily", Satisfaction: "5"})

		var invalid *domain.InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "gender", invalid.Field)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := new(MockResponseRepository)
		repo.On("Create", ctx, mock.Anything).Return(storeErr)

		svc := NewSurveyCommandService(repo)
		_, err := svc.Submit(ctx, domain.Submission{Age: "25", Gender: "other", Frequency: "rarely", Satisfaction: "1"})

		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestUserQueryService(t *testing.T) {
	ctx := context.Background()
	history := []domain.SurveyResponse{
		{ID: "a", CreatedAt: "2024-01-01T00:00:00.000000Z", Satisfaction: "2"},
		{ID: "c", CreatedAt: "2024-01-03T00:00:00.000000Z", Satisfaction: "5"},
		{ID: "b", CreatedAt: "2024-01-02T00:00:00.000000Z", Satisfaction: "3"},
	}

	t.Run("status", func(t *testing.T) {
		repo := new(MockResponseRepository)
		repo.On("FindByUserID", ctx, "u1").Return(history, nil)

		status, err := NewUserQueryService(repo).Status(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, domain.UserStatus{
			UserID:           "u1",
			HasResponse:      true,
			LastResponseID:   "c",
			LastResponseDate: "2024-01-03T00:00:00.000000Z",
			ResponseCount:    3,
		}, status)
	})

	t.Run("latest response", func(t *testing.T) {
		repo := new(MockResponseRepository)
		repo.On("FindByUserID", ctx, "u1").Return(history, nil)

		latest, err := NewUserQueryService(repo).LatestResponse(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "5", latest.Satisfaction)
	})

	t.Run("latest response not found", func(t *testing.T) {
		repo := new(MockResponseRepository)
		repo.On("FindByUserID", ctx, "nobody").Return([]domain.SurveyResponse{}, nil)

		latest, err := NewUserQueryService(repo).LatestResponse(ctx, "nobody")

		assert.Nil(t, latest)
		assert.ErrorIs(t, err, ErrResponseNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockResponseRepository)
		repo.On("FindByUserID", ctx, "u1").Return(nil, errors.New("timeout"))

		_, err := NewUserQueryService(repo).Status(ctx, "u1")
		assert.Error(t, err)
	})
}
