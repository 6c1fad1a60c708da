package application

import (
	"context"
	"errors"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

// ErrResponseNotFound is returned when a user has no stored answer.
var ErrResponseNotFound = errors.New("survey response not found")

// ResponseRepository is the port to the survey response store.
// ResponseRepository は Public コンテキストがアンケート回答を追記・参照するためのポート。
type ResponseRepository interface {
	Create(ctx context.Context, response *domain.SurveyResponse) error
	// FindByUserID は順序を保証しない。インデックス前提のクエリにはしないこと。
	FindByUserID(ctx context.Context, userID string) ([]domain.SurveyResponse, error)
}

// SurveyCommandService handles writing use-cases.
type SurveyCommandService interface {
	Submit(ctx context.Context, submission domain.Submission) (*domain.SurveyResponse, error)
}

// UserQueryService describes the per-user read use-cases.
// UserQueryService は LIFF 起動時の「前回の回答」確認に使うリーダーモデル。
type UserQueryService interface {
	Status(ctx context.Context, userID string) (domain.UserStatus, error)
	LatestResponse(ctx context.Context, userID string) (*domain.SurveyResponse, error)
}
