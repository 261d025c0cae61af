// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// CreateAccessToken signs the access JWT the auth middleware expects:
// "id" (uuid string), "user_name", "exp".
func CreateAccessToken(u *userModel.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.FullName(),
		"iat":       now.Unix(),
		"exp":       now.Add(time.Duration(configs.AccessTokenMinutes) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// CreateRefreshToken signs a longer-lived refresh JWT with the refresh secret.
func CreateRefreshToken(u *userModel.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  u.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken verifies raw against the refresh secret and returns the
// user id claim. Tokens signed with any other key or method are rejected.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	id, _ := claims["id"].(string)
	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return userID, nil
}

// TokenExpiry extracts the exp claim without verifying the signature. Used
// when blacklisting a token at logout.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Now().UTC().Add(24 * time.Hour)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0).UTC()
	}
	return time.Now().UTC().Add(24 * time.Hour)
}
