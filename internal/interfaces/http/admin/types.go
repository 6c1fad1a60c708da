package admin

import (
	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
)

type responsePayload struct {
	ID           string  `json:"id"`
	UserID       *string `json:"userId"`
	DisplayName  *string `json:"displayName"`
	Age          string  `json:"age"`
	Gender       string  `json:"gender"`
	Frequency    string  `json:"frequency"`
	Satisfaction string  `json:"satisfaction"`
	Feedback     *string `json:"feedback"`
	Timestamp    string  `json:"timestamp"`
	CreatedAt    string  `json:"createdAt"`
}

type statisticsPayload struct {
	TotalResponses           int            `json:"total_responses"`
	AgeDistribution          map[string]int `json:"age_distribution"`
	GenderDistribution       map[string]int `json:"gender_distribution"`
	FrequencyDistribution    map[string]int `json:"frequency_distribution"`
	SatisfactionDistribution map[string]int `json:"satisfaction_distribution"`
	AverageSatisfaction      float64        `json:"average_satisfaction"`
	ResponsesByDate          map[string]int `json:"responses_by_date"`
}

type paginationPayload struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

type resultsPayload struct {
	Responses  []responsePayload `json:"responses"`
	Statistics statisticsPayload `json:"statistics"`
	Pagination paginationPayload `json:"pagination"`
}

func toResultsPayload(page *adminapp.ResultsPage) resultsPayload {
	responses := make([]responsePayload, 0, len(page.Responses))
	for _, r := range page.Responses {
		responses = append(responses, toResponsePayload(r))
	}
	return resultsPayload{
		Responses:  responses,
		Statistics: toStatisticsPayload(page.Statistics),
		Pagination: paginationPayload{
			Limit:  page.Paging.Limit,
			Offset: page.Paging.Offset,
			Total:  len(responses),
		},
	}
}

func toResponsePayload(r admindomain.Response) responsePayload {
	return responsePayload{
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
	}
}

func toStatisticsPayload(s admindomain.Statistics) statisticsPayload {
	return statisticsPayload{
		TotalResponses:           s.TotalResponses,
		AgeDistribution:          s.AgeDistribution,
		GenderDistribution:       s.GenderDistribution,
		FrequencyDistribution:    s.FrequencyDistribution,
		SatisfactionDistribution: s.SatisfactionDistribution,
		AverageSatisfaction:      s.AverageSatisfaction.InexactFloat64(),
		ResponsesByDate:          s.ResponsesByDate,
	}
}
