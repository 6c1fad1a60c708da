package application

import (
	"context"
	"fmt"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

type userQueryService struct {
	repo ResponseRepository
}

// NewUserQueryService creates a UserQueryService backed by repo.
func NewUserQueryService(repo ResponseRepository) UserQueryService {
	return &userQueryService{repo: repo}
}

func (s *userQueryService) Status(ctx context.Context, userID string) (domain.UserStatus, error) {
	responses, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.UserStatus{}, fmt.Errorf("ユーザーの回答取得に失敗: %w", err)
	}
	return domain.ResolveUserStatus(userID, responses), nil
}

func (s *userQueryService) LatestResponse(ctx context.Context, userID string) (*domain.SurveyResponse, error) {
	responses, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの回答取得に失敗: %w", err)
	}
	latest, ok := domain.LatestResponse(responses)
	if !ok {
		return nil, ErrResponseNotFound
	}
	return &latest, nil
}
