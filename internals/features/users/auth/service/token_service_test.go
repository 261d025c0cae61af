// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

func testUser() *userModel.UserModel {
	return &userModel.UserModel{
		UserID:        uuid.New(),
		UserFirstName: "Dana",
		UserLastName:  "Whitmore",
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "access-secret"
	configs.JWTRefreshSecret = "refresh-secret"

	u := testUser()
	raw, err := CreateRefreshToken(u)
	require.NoError(t, err)

	got, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	configs.JWTSecret = "access-secret"
	configs.JWTRefreshSecret = "refresh-secret"

	// signed with the access secret, must not pass as a refresh token
	raw, err := CreateAccessToken(testUser())
	require.NoError(t, err)

	_, err = ParseRefreshToken(raw)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestParseRefreshToken_RejectsGarbage(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ParseRefreshToken(raw)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken, raw)
	}
}

func TestParseRefreshToken_RejectsTampered(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"

	raw, err := CreateRefreshToken(testUser())
	require.NoError(t, err)

	configs.JWTRefreshSecret = "rotated-secret"
	_, err = ParseRefreshToken(raw)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestTokenExpiry(t *testing.T) {
	configs.JWTRefreshSecret = "refresh-secret"

	raw, err := CreateRefreshToken(testUser())
	require.NoError(t, err)

	exp := TokenExpiry(raw)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), exp, time.Minute)

	// unparseable tokens fall back to a day so the blacklist row still expires
	fallback := TokenExpiry("junk")
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), fallback, time.Minute)
}
