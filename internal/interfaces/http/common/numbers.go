package common

import (
	"strconv"
	"strings"
)

// ParseNonNegativeInt は 0 以上の整数を解釈する。空・不正値・負数は fallback。
func ParseNonNegativeInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback, false
	}
	return parsed, true
}
