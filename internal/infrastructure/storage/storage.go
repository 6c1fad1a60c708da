package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	"github.com/sngm3741/liff-survey/api/internal/config"
	firestorestore "github.com/sngm3741/liff-survey/api/internal/infrastructure/firestore"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/memory"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/messenger"
	mongostore "github.com/sngm3741/liff-survey/api/internal/infrastructure/mongo"
	publicapp "github.com/sngm3741/liff-survey/api/internal/public/application"
)

// Store は STORE_DRIVER で選ばれたバックエンドのリポジトリ一式。
type Store struct {
	Name      string
	Responses publicapp.ResponseRepository
	Admin     adminapp.ResponseRepository
	// Failures は Mongo 以外では nil。
	Failures messenger.FailureStore

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backend answers.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend client.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewMemory wraps an in-memory store.
func NewMemory(store *memory.ResponseStore) *Store {
	return &Store{
		Name:      config.StoreMemory,
		Responses: store,
		Admin:     store,
		ping:      store.Ping,
	}
}

// Open は設定に従ってバックエンドへ接続する。
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		logger.Warn("インメモリストアを使用します。再起動で回答は失われます")
		return NewMemory(memory.NewResponseStore()), nil
	case config.StoreMongo:
		return openMongo(ctx, cfg, logger)
	case config.StoreFirestore:
		return openFirestore(ctx, cfg)
	default:
		return nil, fmt.Errorf("未知の STORE_DRIVER です: %q", cfg.StoreDriver)
	}
}

func openMongo(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	client, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongostore.EnsureIndexes(ctx, db, cfg.ResponseCollection); err != nil {
		// インデックスが無くても全件走査で動作するため起動は続ける
		logger.Warn("インデックスの作成に失敗", zap.Error(err))
	}
	return &Store{
		Name:      config.StoreMongo,
		Responses: mongostore.NewResponseRepository(db, cfg.ResponseCollection),
		Admin:     mongostore.NewAdminResponseRepository(db, cfg.ResponseCollection),
		Failures:  mongostore.NewFailedNotificationRepository(db, cfg.FailedNotificationCollection),
		ping: func(ctx context.Context) error {
			return mongostore.Ping(ctx, client)
		},
		close: client.Disconnect,
	}, nil
}

func openFirestore(ctx context.Context, cfg config.Config) (*Store, error) {
	client, err := firestorestore.NewClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		return nil, err
	}
	repo := firestorestore.NewResponseRepository(client, cfg.ResponseCollection)
	return &Store{
		Name:      config.StoreFirestore,
		Responses: repo,
		Admin:     repo,
		ping:      repo.Ping,
		close: func(context.Context) error {
			return client.Close()
		},
	}, nil
}
