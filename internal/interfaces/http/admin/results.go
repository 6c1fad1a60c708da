package admin

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/infrastructure/logger"
	"github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
)

// resultsHandler は 1 ページ分の回答とそのページだけの統計を返す。
func (h *Handler) resultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context(), h.logger)
		paging := parsePaging(r)

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		page, err := h.resultsService.Results(ctx, paging)
		if err != nil {
			log.Error("回答一覧の取得に失敗", zap.Int("limit", paging.Limit), zap.Int("offset", paging.Offset), zap.Error(err))
			common.WriteError(log, w, http.StatusInternalServerError, fmt.Sprintf("データの取得に失敗しました: %v", err))
			return
		}

		common.WriteSuccess(log, w, "", toResultsPayload(page))
	}
}
