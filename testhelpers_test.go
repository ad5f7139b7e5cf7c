package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	session "github.com/serviquest/go-admin"
)

// signToken builds a compact signed token the way the backend would. The
// signature key is irrelevant to the client-side decode, which never
// verifies it.
func signToken(t *testing.T, claims *session.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return signed
}

func adminClaims(userID string) *session.Claims {
	now := time.Now()
	return &session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UID:      userID,
		UserRole: "admin",
	}
}

// recordingSink collects activity events for assertions.
type recordingSink struct {
	events []session.ActivityEvent
}

func (s *recordingSink) Record(_ context.Context, event session.ActivityEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) types() []session.ActivityEventType {
	out := make([]session.ActivityEventType, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.EventType)
	}
	return out
}
