package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmit/placenet/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placenet.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "student@college.edu",
		Role:  models.RoleStudent,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "student@college.edu", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, "placenet.test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	accessToken, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	accessToken, _, _, err := newTestService(time.Hour).GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(accessToken)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAndExtractClaims("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
