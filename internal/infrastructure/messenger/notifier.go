package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 3 * time.Second

// FailedNotification is a message that could not be delivered.
type FailedNotification struct {
	Target      string
	Destination string
	UserID      string
	Text        string
	Error       string
	Attempts    int
	CreatedAt   time.Time
}

// FailureStore keeps undelivered notifications for later inspection.
type FailureStore interface {
	SaveFailure(ctx context.Context, failure FailedNotification) error
}

// Config configures the gateway client.
type Config struct {
	Endpoint    string
	Destination string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Notifier は messenger-gateway の /messages に 1 通ずつ送る。リトライはしない。
type Notifier struct {
	endpoint    string
	destination string
	client      *http.Client
	failures    FailureStore
	logger      *zap.Logger
}

// NewNotifier returns nil when no endpoint is configured.
func NewNotifier(cfg Config, failures FailureStore, logger *zap.Logger) *Notifier {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		return nil
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		endpoint:    endpoint,
		destination: strings.TrimSpace(cfg.Destination),
		client:      client,
		failures:    failures,
		logger:      logger,
	}
}

// NotifyReceipt は送信に失敗した場合、失敗内容を FailureStore に残す。ストアが無ければログのみ。
func (n *Notifier) NotifyReceipt(ctx context.Context, userID, text string) {
	if n == nil {
		return
	}
	err := n.Send(ctx, userID, text)
	if err == nil {
		return
	}
	n.logger.Warn("LINE通知の送信に失敗", zap.String("userId", userID), zap.Error(err))

	if n.failures == nil {
		return
	}
	failure := FailedNotification{
		Target:      "receipt",
		Destination: n.destination,
		UserID:      userID,
		Text:        text,
		Error:       err.Error(),
		Attempts:    1,
		CreatedAt:   time.Now().UTC(),
	}
	if err := n.failures.SaveFailure(ctx, failure); err != nil {
		n.logger.Error("failed_notifications への保存に失敗", zap.Error(err))
	}
}

// Send posts a single message to the gateway.
func (n *Notifier) Send(ctx context.Context, userID, text string) error {
	trimmedUserID := strings.TrimSpace(userID)
	if trimmedUserID == "" {
		return errors.New("userID is required")
	}

	payload := map[string]any{
		"userId": trimmedUserID,
		"text":   text,
	}
	if n.destination != "" {
		payload["destination"] = n.destination
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("メッセンジャー送信用ペイロードの作成に失敗: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	timeout := n.client.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("メッセンジャー送信リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("メッセンジャー送信リクエストに失敗: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("メッセンジャー送信でエラーが発生: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}
