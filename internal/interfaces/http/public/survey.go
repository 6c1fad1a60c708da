package public

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/infrastructure/logger"
	"github.com/sngm3741/liff-survey/api/internal/infrastructure/metrics"
	"github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
	"github.com/sngm3741/liff-survey/api/internal/public/domain"
)

const messageSubmitted = "アンケート回答を保存しました"

func (h *Handler) submitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context(), h.logger)

		fields, err := decodeObject(r)
		if err != nil {
			h.metrics.ObserveSubmission(metrics.SubmissionInvalid)
			common.WriteError(log, w, http.StatusBadRequest, common.MessageInvalidJSON)
			return
		}

		submission := domain.NewSubmission(fields)
		if user, ok := common.UserFromContext(r.Context()); ok {
			if submission.UserID == "" {
				submission.UserID = user.ID
			}
			if submission.UserID != user.ID {
				h.metrics.ObserveSubmission(metrics.SubmissionInvalid)
				common.WriteError(log, w, http.StatusForbidden, common.MessageForbiddenUser)
				return
			}
			if submission.DisplayName == "" {
				submission.DisplayName = user.Name
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		response, err := h.surveyCommands.Submit(ctx, submission)
		if err != nil {
			var missing *domain.MissingFieldError
			var invalid *domain.InvalidValueError
			if errors.As(err, &missing) || errors.As(err, &invalid) {
				h.metrics.ObserveSubmission(metrics.SubmissionInvalid)
				common.WriteError(log, w, http.StatusBadRequest, err.Error())
				return
			}
			h.metrics.ObserveSubmission(metrics.SubmissionFailed)
			log.Error("アンケート回答の保存に失敗", zap.Error(err))
			common.WriteError(log, w, http.StatusInternalServerError, common.MessageServerError)
			return
		}

		h.metrics.ObserveSubmission(metrics.SubmissionAccepted)
		log.Info("アンケート回答を保存", zap.String("id", response.ID))
		h.dispatchReceipt(r.Context(), *response)

		common.WriteSuccess(log, w, messageSubmitted, submitResultPayload{ID: response.ID})
	}
}
