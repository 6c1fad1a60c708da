package public

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/infrastructure/metrics"
	publicapp "github.com/sngm3741/liff-survey/api/internal/public/application"
)

const defaultRequestTimeout = 5 * time.Second

// ReceiptNotifier sends the thank-you message after a submission.
type ReceiptNotifier interface {
	NotifyReceipt(ctx context.Context, userID, text string)
}

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger         *zap.Logger
	surveyCommands publicapp.SurveyCommandService
	userQueries    publicapp.UserQueryService
	notifier       ReceiptNotifier
	metrics        *metrics.Metrics
	timeout        time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *zap.Logger
	SurveyCommands publicapp.SurveyCommandService
	UserQueries    publicapp.UserQueryService
	// Notifier は nil なら通知しない。
	Notifier       ReceiptNotifier
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handler{
		logger:         logger,
		surveyCommands: cfg.SurveyCommands,
		userQueries:    cfg.UserQueries,
		notifier:       cfg.Notifier,
		metrics:        cfg.Metrics,
		timeout:        timeout,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/survey/submit", h.submitHandler())
	r.Post("/user/status", h.userStatusHandler())
	r.Get("/user/{userId}/latest-response", h.latestResponseHandler())
}
