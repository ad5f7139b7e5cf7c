package session

import "context"

var sessionCtxKey = &contextKey{"session"}

type contextKey struct {
	name string
}

// WithContext sets the Session in the given context
func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// FromContext finds the session from the context.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(Session)
	return s, ok
}

// RoleFromContext is a convenience to read the current role directly from
// the context. Anonymous or absent sessions report RoleUser and false.
func RoleFromContext(ctx context.Context) (UserRole, bool) {
	s, ok := FromContext(ctx)
	if !ok || !s.Authenticated() {
		return RoleUser, false
	}
	return s.Role(), true
}
