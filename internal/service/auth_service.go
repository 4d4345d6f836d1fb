package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/observability"
)

const sessionKeyPrefix = "admin:session:"

// AuthService implements the admin gate: a password check on login, a
// non-expiring session that survives reloads, and explicit sign-out.
type AuthService interface {
	Login(ctx context.Context, password string) (dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Verify(ctx context.Context, token string) (string, error)
}

type authService struct {
	sessions *redis.Client
	password string
	secret   []byte
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthService builds the admin authentication service.
func NewAuthService(sessions *redis.Client, password, jwtSecret string, logger zerolog.Logger) AuthService {
	return &authService{
		sessions: sessions,
		password: password,
		secret:   []byte(jwtSecret),
		logger:   logger.With().Str("component", "auth_service").Logger(),
		now:      time.Now,
	}
}

// Login verifies the password and mints a session token. The session is
// stored without expiry; only an explicit sign-out ends it.
func (s *authService) Login(ctx context.Context, password string) (dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		observability.AuthAttempts().WithLabelValues("failure").Inc()
		return dto.LoginResponse{}, ErrPasswordMismatch
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Set(ctx, sessionKeyPrefix+sessionID, "1", 0).Err(); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}

	claims := jwt.MapClaims{
		"sid":  sessionID,
		"role": "admin",
		"iat":  s.now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}

	observability.AuthAttempts().WithLabelValues("success").Inc()
	s.logger.Info().Str("session_id", sessionID).Msg("admin signed in")

	return dto.LoginResponse{Token: token}, nil
}

// Logout deletes the session so any token that references it stops working.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info().Str("session_id", sessionID).Msg("admin signed out")

	return nil
}

// Verify parses the token and confirms its session is still live, returning
// the session identifier. Tokens carry no expiry; revocation is the only way
// a session ends.
func (s *authService) Verify(ctx context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidToken
	}

	exists, err := s.sessions.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check session: %w", err)
	}
	if exists == 0 {
		return "", ErrSessionRevoked
	}

	return sessionID, nil
}
