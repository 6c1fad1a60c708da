package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

// responseDocument は Firestore 上の survey_responses ドキュメント。ID はドキュメント ID を使う。
type responseDocument struct {
	UserID       *string `firestore:"userId"`
	DisplayName  *string `firestore:"displayName"`
	Age          string  `firestore:"age"`
	Gender       string  `firestore:"gender"`
	Frequency    string  `firestore:"frequency"`
	Satisfaction string  `firestore:"satisfaction"`
	Feedback     *string `firestore:"feedback"`
	Timestamp    string  `firestore:"timestamp"`
	CreatedAt    string  `firestore:"createdAt"`
}

// ResponseRepository は Firestore で回答を扱う。Public/Admin 双方のポートを満たす。
type ResponseRepository struct {
	client     *firestore.Client
	collection string
}

// NewClient opens a Firestore client using application default credentials.
func NewClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("Firestore クライアントの作成に失敗: %w", err)
	}
	return client, nil
}

func NewResponseRepository(client *firestore.Client, collection string) *ResponseRepository {
	return &ResponseRepository{client: client, collection: collection}
}

func (r *ResponseRepository) Create(ctx context.Context, response *domain.SurveyResponse) error {
	if response == nil {
		return errors.New("response payload is nil")
	}
	ref, _, err := r.client.Collection(r.collection).Add(ctx, responseDocument{
		UserID:       response.UserID,
		DisplayName:  response.DisplayName,
		Age:          response.Age,
		Gender:       response.Gender,
		Frequency:    response.Frequency,
		Satisfaction: response.Satisfaction,
		Feedback:     response.Feedback,
		Timestamp:    response.Timestamp,
		CreatedAt:    response.CreatedAt,
	})
	if err != nil {
		return err
	}
	response.ID = ref.ID
	return nil
}

// FindByUserID は等価条件のみで検索する。複合インデックスを要求しないよう並び替えはしない。
func (r *ResponseRepository) FindByUserID(ctx context.Context, userID string) ([]domain.SurveyResponse, error) {
	iter := r.client.Collection(r.collection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	responses := make([]domain.SurveyResponse, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc responseDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		responses = append(responses, doc.toPublic(snap.Ref.ID))
	}
	return responses, nil
}

func (r *ResponseRepository) ListRecent(ctx context.Context, paging adminapp.Paging) ([]admindomain.Response, error) {
	query := r.client.Collection(r.collection).OrderBy("createdAt", firestore.Desc)
	if paging.Offset > 0 {
		query = query.Offset(paging.Offset)
	}
	if paging.Limit > 0 {
		query = query.Limit(paging.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	responses := make([]admindomain.Response, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc responseDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		responses = append(responses, doc.toAdmin(snap.Ref.ID))
	}
	return responses, nil
}

// Ping は 1 件だけ読み出して Firestore が応答するか確認する。
func (r *ResponseRepository) Ping(ctx context.Context) error {
	iter := r.client.Collection(r.collection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

func (d responseDocument) toPublic(id string) domain.SurveyResponse {
	return domain.SurveyResponse{
		ID:           id,
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

func (d responseDocument) toAdmin(id string) admindomain.Response {
	return admindomain.Response{
		ID:           id,
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
