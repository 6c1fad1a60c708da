package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(zap.NewNop(), rec, "ok", map[string]string{"id": "x"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, map[string]any{"id": "x"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestWriteInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInternalError(zap.NewNop(), rec, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "db down")
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(nil)(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint GET /missing not found", decode(t, rec)["error"])

	rec = httptest.NewRecorder()
	MethodNotAllowed(nil)(rec, httptest.NewRequest(http.MethodDelete, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decode(t, rec)["error"])
}

func TestParseNonNegativeInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		parsed bool
	}{
		{"", 7, false},
		{"0", 0, true},
		{" 25 ", 25, true},
		{"-1", 7, false},
		{"abc", 7, false},
	}
	for _, tt := range tests {
		got, ok := ParseNonNegativeInt(tt.in, 7)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.parsed, ok, tt.in)
	}
}
