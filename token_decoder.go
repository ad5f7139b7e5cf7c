package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// Decode parses a compact JWS token into Claims without verifying the
// signature. Verification is the backend's job; this decode exists so the
// console can show who is signed in and gate navigation. Structural
// failures map to ErrTokenMalformed, an exp claim in the past to
// ErrTokenExpired.
func Decode(tokenString string) (*Claims, error) {
	return decodeAt(tokenString, time.Now())
}

func decodeAt(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	if claims.ExpiredAt(now) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}
