package public

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/infrastructure/logger"
	"github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/liff-survey/api/internal/public/application"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

const (
	messageStatusFetched    = "ユーザー状態を取得しました"
	messageResponseNotFound = "回答が見つかりませんでした"
	messageUserIDRequired   = "userId is required"
)

func (h *Handler) userStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context(), h.logger)

		fields, err := decodeObject(r)
		if err != nil {
			common.WriteError(log, w, http.StatusBadRequest, common.MessageInvalidJSON)
			return
		}
		userID, _ := fields["userId"].(string)
		userID = domain.NormalizeUserID(userID)
		if userID == "" {
			common.WriteError(log, w, http.StatusBadRequest, messageUserIDRequired)
			return
		}
		if !authorizeUser(r, userID) {
			common.WriteError(log, w, http.StatusForbidden, common.MessageForbiddenUser)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		status, err := h.userQueries.Status(ctx, userID)
		if err != nil {
			log.Error("ユーザー状態の取得に失敗", zap.String("userId", userID), zap.Error(err))
			common.WriteInternalError(log, w, err)
			return
		}

		common.WriteSuccess(log, w, messageStatusFetched, toUserStatusPayload(status))
	}
}

func (h *Handler) latestResponseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context(), h.logger)

		userID := domain.NormalizeUserID(chi.URLParam(r, "userId"))
		if userID == "" {
			common.WriteError(log, w, http.StatusBadRequest, messageUserIDRequired)
			return
		}
		if !authorizeUser(r, userID) {
			common.WriteError(log, w, http.StatusForbidden, common.MessageForbiddenUser)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		latest, err := h.userQueries.LatestResponse(ctx, userID)
		if errors.Is(err, publicapp.ErrResponseNotFound) {
			common.WriteJSON(log, w, http.StatusOK, common.APIResponse{Success: false, Message: messageResponseNotFound})
			return
		}
		if err != nil {
			log.Error("最新回答の取得に失敗", zap.String("userId", userID), zap.Error(err))
			common.WriteInternalError(log, w, err)
			return
		}

		common.WriteSuccess(log, w, "", toSurveyResponsePayload(*latest))
	}
}
