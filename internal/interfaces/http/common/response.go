package common

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// APIResponse は全エンドポイント共通の JSON 封筒。
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("JSON エンコードに失敗", zap.Error(err))
	}
}

// WriteSuccess writes {success:true, message, data}.
func WriteSuccess(logger *zap.Logger, w http.ResponseWriter, message string, data any) {
	WriteJSON(logger, w, http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

// WriteError writes {success:false, error}.
func WriteError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, APIResponse{Success: false, Error: message})
}

// WriteInternalError は原因を含めた 500 を返す。
func WriteInternalError(logger *zap.Logger, w http.ResponseWriter, err error) {
	WriteError(logger, w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
}

// NotFound は未登録パス用のハンドラ。
func NotFound(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(logger, w, http.StatusNotFound, fmt.Sprintf("Endpoint %s %s not found", r.Method, r.URL.Path))
	}
}

// MethodNotAllowed は HTTP メソッド不一致用のハンドラ。
func MethodNotAllowed(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteError(logger, w, http.StatusMethodNotAllowed, MessageMethodNotAllow)
	}
}
