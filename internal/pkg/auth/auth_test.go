package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mskustudx/studx/internal/app/models"
)

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("demo1234")
	require.NoError(t, err)

	assert.True(t, IsHashed(hash))
	assert.True(t, CheckPassword(hash, "demo1234"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, NeedsRehash(hash))
}

func TestCheckPassword_LegacyPlaintext(t *testing.T) {
	assert.True(t, CheckPassword("demo1234", "demo1234"))
	assert.False(t, CheckPassword("demo1234", "demo12345"))
	assert.True(t, NeedsRehash("demo1234"))
}

func newTestJWT() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studx",
	})
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := newTestJWT()
	token, expiresIn, err := svc.GenerateAccessToken(&models.User{ID: 7, Email: "a@studx.edu.tr"})
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "7", claims.Subject)
}

func TestJWT_Expired(t *testing.T) {
	svc := newTestJWT()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateAccessToken(&models.User{ID: 7, Email: "a@studx.edu.tr"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, _, err := newTestJWT().GenerateAccessToken(&models.User{ID: 7})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "studx"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = ExtractBearerToken("  ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
