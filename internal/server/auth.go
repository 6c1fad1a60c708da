package server

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sngm3741/liff-survey/api/internal/config"
	commonhttp "github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
)

var errMissingToken = errors.New(commonhttp.MessageMissingAuth)

type authClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// authMiddleware はトークンがあれば検証してユーザーをコンテキストへ詰める。
// トークン無しは AUTH_REQUIRED のときだけ 401、不正なトークンは常に 401。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if errors.Is(err, errMissingToken) && !s.authRequired {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, err.Error())
			return
		}

		user := commonhttp.AuthenticatedUser{
			ID:      claims.Subject,
			Name:    claims.Name,
			Picture: claims.Picture,
		}
		next.ServeHTTP(w, r.WithContext(commonhttp.ContextWithUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return "", errMissingToken
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errors.New("Bearer トークンを指定してください")
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		return "", errors.New("アクセストークンが空です")
	}
	return tokenString, nil
}

// parseAuthToken は複数の JWT 設定を順番に試し、署名と Issuer/Audience を確認する。
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("認証設定が構成されていません")
	}

	for _, cfg := range s.jwtConfigs {
		claims, ok := s.verify(tokenString, cfg)
		if ok {
			return claims, nil
		}
	}

	return nil, fmt.Errorf("アクセストークンが無効です")
}

func (s *Server) verify(tokenString string, cfg config.JWTConfig) (*authClaims, bool) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return cfg.Secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return nil, false
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, false
	}
	if claims.Subject == "" {
		return nil, false
	}
	if s.jwtAudience != "" && !slices.Contains(claims.Audience, s.jwtAudience) {
		return nil, false
	}
	return claims, true
}
