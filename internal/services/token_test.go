package services_test

import (
	"testing"
	"time"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/config"
	"flicks-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	issuer := services.NewTokenIssuer(config.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "flicks-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	})

	pair, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := issuer.Parse(pair.Access, services.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)

	claims, err = issuer.Parse(pair.Refresh, services.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)

	_, err = issuer.Parse(pair.Refresh, services.AccessToken)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err), "refresh token is not an access token")

	other := services.NewTokenIssuer(config.JWTConfig{Secret: "other", Issuer: "flicks-test", AccessTTL: time.Hour})
	_, err = other.Parse(pair.Access, services.AccessToken)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	expired := services.NewTokenIssuer(config.JWTConfig{Secret: "test-secret", Issuer: "flicks-test", AccessTTL: -time.Minute})
	stale, err := expired.Issue(1)
	require.NoError(t, err)
	_, err = issuer.Parse(stale.Access, services.AccessToken)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestPasswordHasher(t *testing.T) {
	hasher := services.NewPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, hasher.Compare(hash, "secret123"))
	assert.False(t, hasher.Compare(hash, "secret124"))
}
