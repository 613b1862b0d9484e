package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mdtaufique8084/TMS/models"
)

var (
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.New("auth: malformed token")
	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenSignatureInvalid indicates the signature does not match the key.
	ErrTokenSignatureInvalid = errors.New("auth: invalid token signature")
	// ErrTokenInvalid covers any other verification failure.
	ErrTokenInvalid = errors.New("auth: invalid token")
)

// Signer issues and verifies HS256 bearer tokens. The key is loaded once
// at startup and never changes for the lifetime of the process.
type Signer struct {
	Key []byte
	TTL time.Duration
}

// Issue signs a token embedding userID, expiring TTL from now.
func (s Signer) Issue(userID int) (string, error) {
	now := time.Now()
	claims := models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Key)
}

// Parse verifies the token and returns its claims. Failures map to the
// sentinel errors above; an expired but correctly signed token is always
// reported as expired, never as a signature failure.
func (s Signer) Parse(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
