package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

func add(t *testing.T, s *ResponseStore, userID, createdAt string) *domain.SurveyResponse {
	t.Helper()
	r := &domain.SurveyResponse{
		UserID:       domain.OptionalString(userID),
		Age:          "25",
		Gender:       "male",
		Frequency:    "daily",
		Satisfaction: "5",
		Timestamp:    createdAt,
		CreatedAt:    createdAt,
	}
	require.NoError(t, s.Create(context.Background(), r))
	return r
}

func TestResponseStore_CreateAssignsID(t *testing.T) {
	s := NewResponseStore()
	a := add(t, s, "u1", "2024-01-01T00:00:00.000000Z")
	b := add(t, s, "u1", "2024-01-01T00:00:00.000000Z")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, s.Len())
}

func TestResponseStore_FindByUserID(t *testing.T) {
	s := NewResponseStore()
	add(t, s, "u1", "2024-01-01T00:00:00.000000Z")
	add(t, s, "u2", "2024-01-02T00:00:00.000000Z")
	add(t, s, "", "2024-01-03T00:00:00.000000Z")
	add(t, s, "u1", "2024-01-04T00:00:00.000000Z")

	got, err := s.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := s.FindByUserID(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestResponseStore_ReturnsCopies(t *testing.T) {
	s := NewResponseStore()
	add(t, s, "u1", "2024-01-01T00:00:00.000000Z")

	got, err := s.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	*got[0].UserID = "tampered"

	again, err := s.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestResponseStore_ListRecent(t *testing.T) {
	s := NewResponseStore()
	for i := 1; i <= 5; i++ {
		add(t, s, "u1", fmt.Sprintf("2024-01-0%dT00:00:00.000000Z", i))
	}

	tests := []struct {
		name   string
		paging adminapp.Paging
		want   []string
	}{
		{"first page", adminapp.Paging{Limit: 2}, []string{"2024-01-05", "2024-01-04"}},
		{"offset", adminapp.Paging{Limit: 2, Offset: 3}, []string{"2024-01-02", "2024-01-01"}},
		{"past end", adminapp.Paging{Limit: 2, Offset: 10}, []string{}},
		{"no limit", adminapp.Paging{Offset: 4}, []string{"2024-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.ListRecent(context.Background(), tt.paging)
			require.NoError(t, err)
			dates := make([]string, 0, len(page))
			for _, r := range page {
				dates = append(dates, r.CreatedAt[:10])
			}
			assert.Equal(t, tt.want, dates)
		})
	}
}

func TestResponseStore_ConcurrentCreate(t *testing.T) {
	s := NewResponseStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Create(context.Background(), &domain.SurveyResponse{UserID: domain.OptionalString("u1")})
		}()
	}
	wg.Wait()

	got, err := s.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
