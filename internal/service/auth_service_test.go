package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewAuthService(client, "admin123", "test-secret", testLogger()), mr
}

func TestAuthLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "letmein")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.Login(context.Background(), "")
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestAuthLoginMintsSessionThatSurvivesReload(t *testing.T) {
	svc, mr := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	// First check right after login.
	sessionID, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	// A reload presents the same stored token again.
	again, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	require.Equal(t, sessionID, again)

	// Sessions are stored without expiry.
	require.Zero(t, mr.TTL(sessionKeyPrefix+sessionID))
}

func TestAuthLogoutRevokesSession(t *testing.T) {
	svc, _ := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "admin123")
	require.NoError(t, err)

	sessionID, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sessionID))

	// The next "reload" starts logged out.
	_, err = svc.Verify(context.Background(), result.Token)
	require.ErrorIs(t, err, ErrSessionRevoked)
}

func TestAuthVerifyRejectsGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Verify(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthVerifyRejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc, mr := newAuthFixture(t)

	other := NewAuthService(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "admin123", "other-secret", testLogger())
	result, err := other.Login(context.Background(), "admin123")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), result.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
