package domain

import (
	"strings"
	"time"
)

// TimestampLayout は createdAt / timestamp の保存形式。
// 固定幅の UTC 表記にしておくことで、文字列の辞書順と時系列順が一致する。
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// SurveyResponse represents a persisted survey answer.
type SurveyResponse struct {
	ID           string
	UserID       *string
	DisplayName  *string
	Age          string
	Gender       string
	Frequency    string
	Satisfaction string
	Feedback     *string
	Timestamp    string
	CreatedAt    string
}

// FormatTimestamp は保存用のタイムスタンプ文字列を返す。
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp は createdAt を解釈する。
// 自前の固定幅形式に加え、外部から投入された RFC3339 系の値も受け付ける。
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	// タイムゾーン無しの値は UTC とみなす。
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// OptionalString は空文字を nil に寄せる。
func OptionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// StringValue returns the pointed value or "".
func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
