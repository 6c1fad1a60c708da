package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/config"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/logger"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/storage"
	"github.com/sngm3741/liff-survey/api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	zl := logger.NewForEnvironment(cfg.IsProduction(), cfg.LogLevel)
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout)
	defer cancel()

	store, err := storage.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("ストアへの接続に失敗しました", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	app := server.New(cfg, store, zl)
	if err := app.Run(); err != nil {
		zl.Fatal("サーバー起動に失敗", zap.Error(err))
	}
}
