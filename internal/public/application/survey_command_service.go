package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

type surveyCommandService struct {
	repo ResponseRepository
	now  func() time.Time
}

// NewSurveyCommandService creates a SurveyCommandService backed by repo.
func NewSurveyCommandService(repo ResponseRepository) SurveyCommandService {
	return &surveyCommandService{repo: repo, now: time.Now}
}

// Submit は検証済みの回答にサーバー側のタイムスタンプを付与して追記する。
// 重複排除は行わないため、同じ内容の再送信も新しいドキュメントになる。
func (s *surveyCommandService) Submit(ctx context.Context, submission domain.Submission) (*domain.SurveyResponse, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	stamp := domain.FormatTimestamp(s.now())
	response := &domain.SurveyResponse{
		UserID:       domain.OptionalString(submission.UserID),
		DisplayName:  domain.OptionalString(submission.DisplayName),
		Age:          submission.Age,
		Gender:       submission.Gender,
		Frequency:    submission.Frequency,
		Satisfaction: submission.Satisfaction,
		Feedback:     domain.OptionalString(submission.Feedback),
		Timestamp:    stamp,
		CreatedAt:    stamp,
	}

	if err := s.repo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("アンケート回答の保存に失敗: %w", err)
	}
	return response, nil
}
