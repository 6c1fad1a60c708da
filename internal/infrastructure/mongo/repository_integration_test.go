//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/messenger"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start MongoDB container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, uri, 30*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client.Database("liff_survey_test")
}

func seed(t *testing.T, repo *ResponseRepository, userID, createdAt, satisfaction string) *domain.SurveyResponse {
	t.Helper()
	response := &domain.SurveyResponse{
		UserID:       domain.OptionalString(userID),
		Age:          "25",
		Gender:       "male",
		Frequency:    "daily",
		Satisfaction: satisfaction,
		Timestamp:    createdAt,
		CreatedAt:    createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), response))
	require.NotEmpty(t, response.ID)
	return response
}

func TestMongoRepositories(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	const collection = "survey_responses"

	require.NoError(t, EnsureIndexes(ctx, db, collection))
	// 二度目の呼び出しでも失敗しない
	require.NoError(t, EnsureIndexes(ctx, db, collection))

	repo := NewResponseRepository(db, collection)
	admin := NewAdminResponseRepository(db, collection)

	seed(t, repo, "u1", "2024-03-01T10:00:00.000000Z", "3")
	latest := seed(t, repo, "u1", "2024-03-03T10:00:00.000000Z", "5")
	seed(t, repo, "u2", "2024-03-02T10:00:00.000000Z", "4")
	seed(t, repo, "", "2024-03-04T10:00:00.000000Z", "1")

	t.Run("find by user", func(t *testing.T) {
		responses, err := repo.FindByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, responses, 2)

		got, ok := domain.LatestResponse(responses)
		require.True(t, ok)
		assert.Equal(t, latest.ID, got.ID)
		assert.Nil(t, got.Feedback)
	})

	t.Run("anonymous responses store null user", func(t *testing.T) {
		var raw bson.M
		require.NoError(t, db.Collection(collection).FindOne(ctx, bson.M{"createdAt": "2024-03-04T10:00:00.000000Z"}).Decode(&raw))
		v, ok := raw["userId"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("list recent honours order and paging", func(t *testing.T) {
		page, err := admin.ListRecent(ctx, adminapp.Paging{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "2024-03-03T10:00:00.000000Z", page[0].CreatedAt)
		assert.Equal(t, "2024-03-02T10:00:00.000000Z", page[1].CreatedAt)
	})

	t.Run("failed notification", func(t *testing.T) {
		failures := NewFailedNotificationRepository(db, "failed_notifications")
		require.NoError(t, failures.SaveFailure(ctx, messenger.FailedNotification{
			Target: "receipt", UserID: "u1", Text: "hello", Error: "status=502", Attempts: 1,
		}))

		var doc FailedNotificationDocument
		require.NoError(t, db.Collection("failed_notifications").FindOne(ctx, bson.M{}).Decode(&doc))
		assert.Equal(t, "pending", doc.Status)
		assert.Equal(t, "u1", doc.Payload.UserID)
		assert.False(t, doc.CreatedAt.IsZero())
	})
}
