package main

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

const spreadDays = 30

var ageBands = []string{"10代", "20代", "30代", "40代", "50代", "60代以上"}

type fakeUser struct {
	id   string
	name string
}

// generateResponses は users 人の回答者と匿名回答を混ぜ、createdAt を過去 30 日に散らす。
// users が 0 なら全件匿名。
func generateResponses(f *gofakeit.Faker, n, users int, now time.Time) []domain.SurveyResponse {
	pool := make([]fakeUser, users)
	for i := range pool {
		pool[i] = fakeUser{
			id:   fmt.Sprintf("U%032x", f.Uint64()),
			name: f.Name(),
		}
	}

	start := now.Add(-spreadDays * 24 * time.Hour)
	responses := make([]domain.SurveyResponse, 0, n)
	for i := 0; i < n; i++ {
		createdAt := domain.FormatTimestamp(f.DateRange(start, now))
		r := domain.SurveyResponse{
			Age:          f.RandomString(ageBands),
			Gender:       f.RandomString(domain.Genders),
			Frequency:    f.RandomString(domain.Frequencies),
			Satisfaction: f.RandomString(domain.SatisfactionScores),
			Timestamp:    createdAt,
			CreatedAt:    createdAt,
		}
		if f.Bool() {
			r.Feedback = domain.OptionalString(f.Sentence(8))
		}
		// 2 割程度は匿名回答にする
		if len(pool) > 0 && f.IntRange(1, 10) > 2 {
			u := pool[f.IntRange(0, len(pool)-1)]
			r.UserID = domain.OptionalString(u.id)
			r.DisplayName = domain.OptionalString(u.name)
		}
		responses = append(responses, r)
	}
	return responses
}
