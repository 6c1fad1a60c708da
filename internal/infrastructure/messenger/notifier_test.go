package messenger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingStore struct {
	mu       sync.Mutex
	failures []FailedNotification
	err      error
}

func (s *recordingStore) SaveFailure(_ context.Context, failure FailedNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure)
	return s.err
}

func TestNewNotifier_DisabledWithoutEndpoint(t *testing.T) {
	n := NewNotifier(Config{Endpoint: "  "}, nil, nil)
	assert.Nil(t, n)

	// nil の Notifier でも呼び出せる
	n.NotifyReceipt(context.Background(), "u1", "hello")
}

func TestNotifier_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := NewNotifier(Config{Endpoint: srv.URL + "/", Destination: "line"}, nil, zap.NewNop())
	require.NotNil(t, n)

	require.NoError(t, n.Send(context.Background(), " U123 ", "ありがとう"))
	assert.Equal(t, map[string]any{"userId": "U123", "text": "ありがとう", "destination": "line"}, got)
}

func TestNotifier_SendRequiresUser(t *testing.T) {
	n := NewNotifier(Config{Endpoint: "http://127.0.0.1:1"}, nil, nil)
	assert.Error(t, n.Send(context.Background(), "", "x"))
}

func TestNotifier_NotifyReceiptPersistsFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	store := &recordingStore{}
	n := NewNotifier(Config{Endpoint: srv.URL, Destination: "line"}, store, zap.NewNop())

	n.NotifyReceipt(context.Background(), "U1", "本文")

	assert.Equal(t, 1, calls)
	require.Len(t, store.failures, 1)
	failure := store.failures[0]
	assert.Equal(t, "receipt", failure.Target)
	assert.Equal(t, "U1", failure.UserID)
	assert.Equal(t, "本文", failure.Text)
	assert.Equal(t, 1, failure.Attempts)
	assert.Contains(t, failure.Error, "status=502")
}

func TestNotifier_NotifyReceiptSuccessDoesNotPersist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := &recordingStore{err: errors.New("unused")}
	n := NewNotifier(Config{Endpoint: srv.URL}, store, zap.NewNop())

	n.NotifyReceipt(context.Background(), "U1", "本文")
	assert.Empty(t, store.failures)
}
