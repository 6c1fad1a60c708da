package public

import (
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

type surveyResponsePayload struct {
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

type userStatusPayload struct {
	UserID           string `json:"userId"`
	HasResponse      bool   `json:"hasResponse"`
	LastResponseID   string `json:"lastResponseId,omitempty"`
	LastResponseDate string `json:"lastResponseDate,omitempty"`
	ResponseCount    int    `json:"responseCount"`
}

type submitResultPayload struct {
	ID string `json:"id"`
}

func toSurveyResponsePayload(r domain.SurveyResponse) surveyResponsePayload {
	return surveyResponsePayload{
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

func toUserStatusPayload(s domain.UserStatus) userStatusPayload {
	return userStatusPayload{
		UserID:           s.UserID,
		HasResponse:      s.HasResponse,
		LastResponseID:   s.LastResponseID,
		LastResponseDate: s.LastResponseDate,
		ResponseCount:    s.ResponseCount,
	}
}
