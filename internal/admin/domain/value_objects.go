package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const unknownDate = "unknown"

type Satisfaction int

// NewSatisfaction parses a stored satisfaction label such as "4".
func NewSatisfaction(value string) (Satisfaction, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("satisfaction is required")
	}
	score, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid satisfaction: %w", err)
	}
	if score < 1 || score > 5 {
		return 0, fmt.Errorf("satisfaction must be between 1 and 5")
	}
	return Satisfaction(score), nil
}

func (s Satisfaction) Int64() int64 {
	return int64(s)
}

// DateKey は responses_by_date の集計キー。ISO-8601 の日付部分を使う。
type DateKey string

func NewDateKey(timestamp, fallback string) DateKey {
	for _, candidate := range []string{timestamp, fallback} {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		date, _, _ := strings.Cut(trimmed, "T")
		return DateKey(date)
	}
	return DateKey(unknownDate)
}

func (k DateKey) String() string {
	return string(k)
}
