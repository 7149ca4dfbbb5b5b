package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen/config"
	"canteen/shared"
	"canteen/shared/cache"
	"canteen/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token has expired")
	ErrRevokedToken = errors.New("session has been revoked")
)

const (
	cacheKeySession = "session"
)

// Claims is the session token payload.
type Claims struct {
	Username  string `json:"username"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Session issues and validates server-side session tokens. The token itself
// is a signed JWT, but the session it names lives in redis: a token whose
// session id is no longer present server-side is rejected even when the
// signature still verifies, which is what makes logout effective.
type Session interface {
	Issue(ctx context.Context, username, role string) (string, error)
	Validate(ctx context.Context, token string) (*Claims, error)
	Revoke(ctx context.Context, token string) error
}

type sessionImpl struct {
	config *config.Config
	cache  cache.RedisCache
}

func New(cfg *config.Config, cache cache.RedisCache) Session {
	return &sessionImpl{
		config: cfg,
		cache:  cache,
	}
}

func (s *sessionImpl) Issue(ctx context.Context, username, role string) (string, error) {
	now := timezone.Now()
	sessionID := uuid.NewString()
	expiresAt := now.Add(time.Duration(s.config.Session.ExpireMin) * time.Minute)

	claims := Claims{
		Username:  username,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   username,
			ID:        sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	ttl := s.config.Session.ExpireMin * 60
	if err := s.cache.Save(ctx, s.sessionKey(sessionID), username, ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return signedToken, nil
}

func (s *sessionImpl) Validate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	var username string
	if err := s.cache.Get(ctx, s.sessionKey(claims.SessionID), &username); err != nil {
		return nil, ErrRevokedToken
	}

	if username != claims.Username {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *sessionImpl) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, s.sessionKey(claims.SessionID)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *sessionImpl) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Username == "" || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *sessionImpl) sessionKey(sessionID string) string {
	return shared.BuildCacheKey(cacheKeySession, sessionID)
}

// ExtractTokenFromHeader extracts the session token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(prefix):], nil
}
