package auth

import (
	"testing"
	"time"

	"accounts/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		Secret:   secret,
		TokenTTL: ttl,
	}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	accountID := uuid.New()
	token, err := svc.GenerateToken(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_ValidateRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	// A negative TTL falls back to the default, so build one explicitly.
	expired := &jwtService{
		secret: []byte("test-secret"),
		ttl:    -time.Minute,
	}

	token, err := expired.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
