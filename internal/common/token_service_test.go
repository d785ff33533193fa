package common

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), nil)
	ctx := context.Background()

	token, expiresAt, err := svc.Issue("user-1", "ayse", "team-1", "Wing Team", "technician", time.Hour)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	decoded, err := svc.Validate(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", decoded.UserID)
	assert.Equal(t, "ayse", decoded.Username)
	assert.Equal(t, "team-1", decoded.TeamID)
	assert.Equal(t, "Wing Team", decoded.TeamName)
	assert.Equal(t, "technician", decoded.Role)
	assert.NotEmpty(t, decoded.TokenID)
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), nil)
	verifier := NewTokenService([]byte("secret-b"), nil)

	token, _, err := issuer.Issue("user-1", "ayse", "", "", "technician", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestTokenService_Validate_Tampered(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), nil)

	token, _, err := svc.Issue("user-1", "ayse", "", "", "technician", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ1c2VyX2lkIjoiYXR0YWNrZXIifQ." + parts[2]

	_, err = svc.Validate(context.Background(), tampered)
	assert.Error(t, err)
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), nil)

	token, _, err := svc.Issue("user-1", "ayse", "", "", "technician", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestTokenService_Revocation_WithoutRedis(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), nil)

	revoked, err := svc.IsTokenRevoked(context.Background(), "some-token-id")
	require.NoError(t, err)
	assert.False(t, revoked)

	// Revoking needs a backing store.
	err = svc.Revoke(context.Background(), "some-token-id", time.Now().Add(time.Hour))
	assert.Error(t, err)
}
