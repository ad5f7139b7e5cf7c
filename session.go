package session

import "fmt"

// Session is the current authentication state: the raw bearer token plus
// the claims derived from it. Claims are never set independently of Token;
// the zero value is the anonymous session.
type Session struct {
	Token  string
	Claims *Claims
}

// Authenticated reports whether the session holds a decoded token.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Claims != nil
}

// UserID returns the authenticated user's ID, or "" when anonymous.
func (s Session) UserID() string {
	if s.Claims == nil {
		return ""
	}
	return s.Claims.UserID()
}

// Role returns the authenticated user's role. Anonymous sessions report
// RoleUser; callers must check Authenticated first when that matters.
func (s Session) Role() UserRole {
	if s.Claims == nil {
		return RoleUser
	}
	return s.Claims.Role()
}

func (s Session) String() string {
	if !s.Authenticated() {
		return "session anonymous"
	}
	return fmt.Sprintf("session user=%s role=%s exp=%s",
		s.Claims.UserID(),
		s.Claims.Role(),
		s.Claims.Expires(),
	)
}
