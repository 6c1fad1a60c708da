package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

// ResponseStore はプロセス内に回答を保持する。ローカル開発とテスト用。
type ResponseStore struct {
	mu        sync.RWMutex
	responses []domain.SurveyResponse
}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{}
}

func (s *ResponseStore) Create(_ context.Context, response *domain.SurveyResponse) error {
	if response == nil {
		return errors.New("response payload is nil")
	}
	response.ID = strings.ReplaceAll(uuid.NewString(), "-", "")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, cloneResponse(*response))
	return nil
}

func (s *ResponseStore) FindByUserID(_ context.Context, userID string) ([]domain.SurveyResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.SurveyResponse, 0)
	for _, r := range s.responses {
		if r.UserID != nil && *r.UserID == userID {
			matches = append(matches, cloneResponse(r))
		}
	}
	return matches, nil
}

// ListRecent は createdAt 降順、同値は ID 降順で返す。
func (s *ResponseStore) ListRecent(_ context.Context, paging adminapp.Paging) ([]admindomain.Response, error) {
	s.mu.RLock()
	sorted := make([]domain.SurveyResponse, len(s.responses))
	copy(sorted, s.responses)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt != sorted[j].CreatedAt {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		}
		return sorted[i].ID > sorted[j].ID
	})

	start := paging.Offset
	if start > len(sorted) {
		start = len(sorted)
	}
	end := len(sorted)
	if paging.Limit > 0 && start+paging.Limit < end {
		end = start + paging.Limit
	}

	page := make([]admindomain.Response, 0, end-start)
	for _, r := range sorted[start:end] {
		r = cloneResponse(r)
		page = append(page, admindomain.Response{
			ID:           r.ID,
			UserID:       r.UserID,
			DisplayName:  r.DisplayName,
			Age:          r.Age,
			Gender:       r.Gender,
			Frequency:    r.Frequency,
			Satisfaction: r.Satisfaction,
			Feedback:     r.Feedback,
			Timestamp:    r.Timestamp,
			CreatedAt:    r.CreatedAt,
		})
	}
	return page, nil
}

// Ping always succeeds.
func (s *ResponseStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored responses.
func (s *ResponseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.responses)
}

func cloneResponse(r domain.SurveyResponse) domain.SurveyResponse {
	r.UserID = cloneString(r.UserID)
	r.DisplayName = cloneString(r.DisplayName)
	r.Feedback = cloneString(r.Feedback)
	return r
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
