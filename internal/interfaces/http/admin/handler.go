package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	"github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger         *zap.Logger
	resultsService adminapp.ResultsService
	adminUserIDs   map[string]struct{}
	timeout        time.Duration
}

// Config provides dependencies for Handler.
type Config struct {
	Logger         *zap.Logger
	ResultsService adminapp.ResultsService
	// AdminUserIDs が空なら結果一覧は誰でも参照できる。
	AdminUserIDs   []string
	RequestTimeout time.Duration
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ids := make(map[string]struct{}, len(cfg.AdminUserIDs))
	for _, id := range cfg.AdminUserIDs {
		ids[id] = struct{}{}
	}
	return &Handler{
		logger:         logger,
		resultsService: cfg.ResultsService,
		adminUserIDs:   ids,
		timeout:        timeout,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.With(h.requireAdmin).Get("/survey/results", h.resultsHandler())
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.adminUserIDs) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, common.MessageMissingAuth)
			return
		}
		if _, allowed := h.adminUserIDs[user.ID]; !allowed {
			common.WriteError(h.logger, w, http.StatusForbidden, common.MessageAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}
