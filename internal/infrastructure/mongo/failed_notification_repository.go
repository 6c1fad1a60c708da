package mongo

import (
	"context"

	"github.com/sngm3741/liff-survey/api/internal/infrastructure/messenger"
	"go.mongodb.org/mongo-driver/mongo"
)

// FailedNotificationRepository persists undelivered messenger notifications.
type FailedNotificationRepository struct {
	collection *mongo.Collection
}

func NewFailedNotificationRepository(db *mongo.Database, collectionName string) *FailedNotificationRepository {
	return &FailedNotificationRepository{collection: db.Collection(collectionName)}
}

func (r *FailedNotificationRepository) SaveFailure(ctx context.Context, failure messenger.FailedNotification) error {
	_, err := r.collection.InsertOne(ctx, newFailedNotificationDocument(failure))
	return err
}
