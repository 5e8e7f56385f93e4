// Package auth issues and verifies the signed identity assertions used by
// protected operations.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller identity embedded in every access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"id"`
	Email  string `json:"email"`
}

// GenerateToken signs an HS256 token asserting {id, email} with an absolute
// expiry of validityDuration from now.
func GenerateToken(userID int, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetClaimsFromToken checks the signature, then the expiry. A lapsed expiry
// surfaces as common.ErrTokenExpired; every other structural or signature
// failure surfaces as common.ErrInvalidToken.
func GetClaimsFromToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
