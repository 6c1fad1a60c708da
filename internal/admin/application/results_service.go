package application

import (
	"context"
	"fmt"

	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
)

type resultsService struct {
	repo ResponseRepository
}

func NewResultsService(repo ResponseRepository) ResultsService {
	return &resultsService{repo: repo}
}

func (s *resultsService) Results(ctx context.Context, paging Paging) (*ResultsPage, error) {
	paging = NewPaging(paging.Limit, paging.Offset)
	responses, err := s.repo.ListRecent(ctx, paging)
	if err != nil {
		return nil, fmt.Errorf("回答一覧の取得に失敗: %w", err)
	}
	if responses == nil {
		responses = []admindomain.Response{}
	}
	return &ResultsPage{
		Responses:  responses,
		Statistics: admindomain.ComputeStatistics(responses),
		Paging:     paging,
	}, nil
}
