package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/config"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/logger"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/storage"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
	"github.com/sngm3741/liff-survey/api/internal/surveyclient"
)

type seedOptions struct {
	responses  int
	users      int
	apiURL     string
	idToken    string
	randomSeed uint64
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	zl := logger.NewForEnvironment(cfg.IsProduction(), cfg.LogLevel)
	defer func() { _ = zl.Sync() }()

	faker := gofakeit.New(opts.randomSeed)
	responses := generateResponses(faker, opts.responses, opts.users, time.Now().UTC())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if opts.apiURL != "" {
		if err := seedThroughAPI(ctx, opts, responses, zl); err != nil {
			zl.Fatal("API 経由の投入に失敗しました", zap.Error(err))
		}
		return
	}

	store, err := storage.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("ストアへの接続に失敗しました", zap.Error(err))
	}
	defer func() { _ = store.Close(context.Background()) }()

	for i := range responses {
		if err := store.Responses.Create(ctx, &responses[i]); err != nil {
			zl.Fatal("回答の挿入に失敗しました", zap.Int("index", i), zap.Error(err))
		}
	}
	zl.Info("Seed 完了", zap.String("store", store.Name), zap.Int("responses", len(responses)), zap.Int("users", opts.users))
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.responses, "responses", 100, "生成する回答数")
	flag.IntVar(&opts.users, "users", 20, "回答者として使うユーザー数")
	flag.StringVar(&opts.apiURL, "api", "", "指定するとストアに直接書かず API 経由で投入する")
	flag.StringVar(&opts.idToken, "token", "", "API 経由で投入するときの ID トークン")
	flag.Uint64Var(&opts.randomSeed, "seed", 0, "乱数シード（0 ならランダム）")
	flag.Parse()

	if opts.responses <= 0 {
		log.Fatal("responses は 1 以上を指定してください")
	}
	if opts.users < 0 {
		opts.users = 0
	}
	return opts
}

// seedThroughAPI は createdAt をサーバー側で付けるため過去日付には散らばらない。
func seedThroughAPI(ctx context.Context, opts seedOptions, responses []domain.SurveyResponse, zl *zap.Logger) error {
	client, err := surveyclient.New(opts.apiURL)
	if err != nil {
		return err
	}
	if opts.idToken != "" {
		ctx = surveyclient.WithIDToken(ctx, opts.idToken)
	}
	for _, r := range responses {
		id, err := client.Submit(ctx, toSubmission(r))
		if err != nil {
			return err
		}
		zl.Debug("回答を投入", zap.String("id", id))
	}
	zl.Info("Seed 完了", zap.String("api", opts.apiURL), zap.Int("responses", len(responses)))
	return nil
}

func toSubmission(r domain.SurveyResponse) surveyclient.Submission {
	return surveyclient.Submission{
		Age:          r.Age,
		Gender:       r.Gender,
		Frequency:    r.Frequency,
		Satisfaction: r.Satisfaction,
		Feedback:     domain.StringValue(r.Feedback),
		UserID:       domain.StringValue(r.UserID),
		DisplayName:  domain.StringValue(r.DisplayName),
	}
}
