package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	"github.com/sngm3741/liff-survey/api/internal/config"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/logger"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/messenger"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/metrics"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/storage"
	adminhttp "github.com/sngm3741/liff-survey/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/liff-survey/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/liff-survey/api/internal/public/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、各ハンドラへ依存を注入する。
type Server struct {
	logger         *zap.Logger
	store          *storage.Store
	metrics        *metrics.Metrics
	notifier       publichttp.ReceiptNotifier
	jwtConfigs     []config.JWTConfig
	jwtAudience    string
	authRequired   bool
	adminUserIDs   []string
	allowedOrigins []string
	requestTimeout time.Duration
	addr           string
	router         chi.Router
}

// New は Config とストアからアプリケーションサービスとルーターを組み立てる。
func New(cfg config.Config, store *storage.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	srv := &Server{
		logger:         log,
		store:          store,
		metrics:        metrics.New(),
		jwtConfigs:     append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:    cfg.JWTAudience,
		authRequired:   cfg.AuthRequired,
		adminUserIDs:   append([]string(nil), cfg.AdminUserIDs...),
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		requestTimeout: cfg.RequestTimeout,
		addr:           cfg.Addr,
	}

	// nil の *Notifier をインターフェースに入れると nil 判定できなくなる
	if n := messenger.NewNotifier(messenger.Config{
		Endpoint:    cfg.MessengerEndpoint,
		Destination: cfg.MessengerDestination,
		Timeout:     cfg.MessengerTimeout,
	}, store.Failures, log); n != nil {
		srv.notifier = n
	}

	srv.router = srv.routes()
	return srv
}

func (s *Server) routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.Middleware(s.logger))
	router.Use(s.metrics.Middleware)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.NotFound(commonhttp.NotFound(s.logger))
	router.MethodNotAllowed(commonhttp.MethodNotAllowed(s.logger))

	router.Get("/health", s.healthHandler())
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger,
		SurveyCommands: publicapp.NewSurveyCommandService(s.store.Responses),
		UserQueries:    publicapp.NewUserQueryService(s.store.Responses),
		Notifier:       s.notifier,
		Metrics:        s.metrics,
		RequestTimeout: s.requestTimeout,
	})
	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:         s.logger,
		ResultsService: adminapp.NewResultsService(s.store.Admin),
		AdminUserIDs:   s.adminUserIDs,
		RequestTimeout: s.requestTimeout,
	})

	router.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		publicHandler.Register(r)
		adminHandler.Register(r)
	})
	return router
}

// Handler exposes the assembled router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動し、シグナル受信で停止してストアを閉じる。
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP サーバー起動", zap.String("addr", s.addr), zap.String("store", s.store.Name))
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

type healthPayload struct {
	Status             string `json:"status"`
	Timestamp          string `json:"timestamp"`
	FirestoreAvailable bool   `json:"firestore_available"`
	Store              string `json:"store"`
}

// healthHandler はストアが応答しなくても 200 を返し、疎通結果だけを載せる。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		available := true
		if err := s.store.Ping(ctx); err != nil {
			available = false
			logger.FromContext(r.Context(), s.logger).Warn("ストアへの疎通確認に失敗", zap.Error(err))
		}

		commonhttp.WriteSuccess(s.logger, w, "LIFF Survey API is running", healthPayload{
			Status:             "OK",
			Timestamp:          time.Now().UTC().Format(time.RFC3339Nano),
			FirestoreAvailable: available,
			Store:              s.store.Name,
		})
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を行う。
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("サーバーが異常終了", zap.Error(err))
			runErr = err
		}
	case sig := <-sigChan:
		s.logger.Info("シグナルを受信。サーバー停止処理を開始します", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("サーバー停止時にエラー", zap.Error(err))
		}
	}

	s.shutdown(context.Background())
	return runErr
}

// shutdown はストアのクライアントをタイムアウト付きで閉じる。
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.store.Close(shutdownCtx); err != nil {
		s.logger.Error("ストア切断時にエラー", zap.Error(err))
	}
}
