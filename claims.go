package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded payload of a session token. The backend signs and
// verifies these; this side only reads them for display and navigation.
type Claims struct {
	jwt.RegisteredClaims
	UID      string         `json:"uid,omitempty"`
	UserRole string         `json:"role,omitempty"`
	Name     string         `json:"name,omitempty"`
	Email    string         `json:"email,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"` // extension payload
}

// Subject returns the subject claim
func (c *Claims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID, falling back to the subject claim
func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// UserUUID parses the user ID as a UUID
func (c *Claims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID())
}

// Role returns the role claim as a UserRole. An unknown or absent role
// degrades to RoleUser, never to something more privileged.
func (c *Claims) Role() UserRole {
	if role, valid := ParseRole(c.UserRole); valid {
		return role
	}
	return RoleUser
}

// HasRole checks if the claims carry a specific role
func (c *Claims) HasRole(role UserRole) bool {
	return c.Role() == role
}

// IsAtLeast checks if the claims role is at least the minimum required role
func (c *Claims) IsAtLeast(minRole UserRole) bool {
	return c.Role().IsAtLeast(minRole)
}

// Expires returns the expiration time
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *Claims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// ExpiredAt reports whether the claims carry an exp in the past relative to
// the given instant. Claims without an exp never expire client-side.
func (c *Claims) ExpiredAt(now time.Time) bool {
	if c.RegisteredClaims.ExpiresAt == nil {
		return false
	}
	return c.RegisteredClaims.ExpiresAt.Time.Before(now)
}
