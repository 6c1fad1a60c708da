package mongo

import (
	"time"

	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/messenger"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseDocument は survey_responses コレクションのスキーマ。
// 任意項目は null として保存し、キー自体は常に存在させる。
type ResponseDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       *string            `bson:"userId"`
	DisplayName  *string            `bson:"displayName"`
	Age          string             `bson:"age"`
	Gender       string             `bson:"gender"`
	Frequency    string             `bson:"frequency"`
	Satisfaction string             `bson:"satisfaction"`
	Feedback     *string            `bson:"feedback"`
	Timestamp    string             `bson:"timestamp"`
	CreatedAt    string             `bson:"createdAt"`
}

// FailedNotificationDocument は送信できなかった通知を保持する。
type FailedNotificationDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Target      string             `bson:"target"`
	Destination string             `bson:"destination,omitempty"`
	Payload     NotificationBody   `bson:"payload"`
	Error       string             `bson:"error"`
	Attempts    int                `bson:"attempts"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	LastTriedAt time.Time          `bson:"lastTriedAt"`
}

// NotificationBody is the gateway payload that failed.
type NotificationBody struct {
	UserID string `bson:"userId"`
	Text   string `bson:"text"`
}

func newResponseDocument(r *domain.SurveyResponse) ResponseDocument {
	return ResponseDocument{
		ID:           primitive.NewObjectID(),
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

func (d ResponseDocument) toPublic() domain.SurveyResponse {
	return domain.SurveyResponse{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		DisplayName:  d.DisplayName,
		Age:          d.Age,
		Gender:       d.Gender,
		Frequency:    d.Frequency,
		Satisfaction: d.Satisfaction,
		Feedback:     d.Feedback,
		Timestamp:    d.Timestamp,
		CreatedAt:    d.CreatedAt,
	}
}

func (d ResponseDocument) toAdmin() admindomain.Response {
	return admindomain.Response{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		DisplayName:  d.DisplayName,
		Age:          d.Age,
		Gender:       d.Gender,
		Frequency:    d.Frequency,
		Satisfaction: d.Satisfaction,
		Feedback:     d.Feedback,
		Timestamp:    d.Timestamp,
		CreatedAt:    d.CreatedAt,
	}
}

func newFailedNotificationDocument(f messenger.FailedNotification) FailedNotificationDocument {
	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return FailedNotificationDocument{
		Target:      f.Target,
		Destination: f.Destination,
		Payload:     NotificationBody{UserID: f.UserID, Text: f.Text},
		Error:       f.Error,
		Attempts:    f.Attempts,
		Status:      "pending",
		CreatedAt:   createdAt,
		LastTriedAt: createdAt,
	}
}
