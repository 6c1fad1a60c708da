package public

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
)

var errNotObject = errors.New("JSON オブジェクトを指定してください")

// decodeObject は任意の JSON オブジェクトを読み込む。空ボディは空オブジェクト扱い。
func decodeObject(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, common.MaxRequestBody))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(body)) == "" {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}

// authorizeUser は認証済みユーザーがいる場合に限り、対象 userId が本人かを確認する。
func authorizeUser(r *http.Request, userID string) bool {
	user, ok := common.UserFromContext(r.Context())
	if !ok {
		return true
	}
	return user.ID == userID
}
