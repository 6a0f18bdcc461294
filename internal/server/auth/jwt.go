// Package auth implements the authentication primitives of the service:
// password hashing/verification and the signed access-token codec.
package auth

import (
	"errors"
	"time"

	"github.com/mahinuralam/Color-Paletters/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered JWT claims plus the internal user ID the
// token is bound to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs an HS256 token binding userID and an absolute expiry
// of now + validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString under secretKey and returns the
// embedded user ID. The signature is checked before any claim is trusted;
// the expiry check only runs on tokens whose signature verified.
//
// Failures are mapped onto the sentinel taxonomy:
//   - common.ErrTokenMalformed        — not decodable as a token at all
//   - common.ErrTokenSignatureInvalid — signature does not verify
//   - common.ErrTokenExpired          — verified but past its expiry
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", common.ErrTokenSignatureInvalid
	}

	return claims.UserID, nil
}
