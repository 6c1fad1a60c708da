package mongo

import (
	"context"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	admindomain "github.com/sngm3741/liff-survey/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminResponseRepository は管理画面向けに回答一覧を新しい順で返すリポジトリ。
type AdminResponseRepository struct {
	responses *mongo.Collection
}

func NewAdminResponseRepository(db *mongo.Database, collection string) *AdminResponseRepository {
	return &AdminResponseRepository{responses: db.Collection(collection)}
}

// ListRecent は createdAt 降順、同値は _id 降順で並べる。
func (r *AdminResponseRepository) ListRecent(ctx context.Context, paging adminapp.Paging) ([]admindomain.Response, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	if paging.Limit > 0 {
		findOpts.SetLimit(int64(paging.Limit))
	}
	if paging.Offset > 0 {
		findOpts.SetSkip(int64(paging.Offset))
	}

	cursor, err := r.responses.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := make([]admindomain.Response, 0)
	for cursor.Next(ctx) {
		var doc ResponseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		responses = append(responses, doc.toAdmin())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
