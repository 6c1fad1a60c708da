package mongo

import (
	"context"
	"errors"

	"github.com/sngm3741/liff-survey/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResponseRepository はパブリック向けのアンケート回答を MongoDB で扱う実装リポジトリ。
type ResponseRepository struct {
	responses *mongo.Collection
}

// NewResponseRepository binds the response collection.
func NewResponseRepository(db *mongo.Database, collection string) *ResponseRepository {
	return &ResponseRepository{responses: db.Collection(collection)}
}

// Create は ObjectID を採番して追記し、採番した ID をドメインへ書き戻す。
func (r *ResponseRepository) Create(ctx context.Context, response *domain.SurveyResponse) error {
	if response == nil {
		return errors.New("response payload is nil")
	}
	doc := newResponseDocument(response)
	if _, err := r.responses.InsertOne(ctx, doc); err != nil {
		return err
	}
	response.ID = doc.ID.Hex()
	return nil
}

// FindByUserID returns every response tagged with userID in storage order.
func (r *ResponseRepository) FindByUserID(ctx context.Context, userID string) ([]domain.SurveyResponse, error) {
	cursor, err := r.responses.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := make([]domain.SurveyResponse, 0)
	for cursor.Next(ctx) {
		var doc ResponseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		responses = append(responses, doc.toPublic())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
