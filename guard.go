package session

import (
	"context"
	"time"
)

// Decision is the outcome of a guard check: either the navigation may
// proceed, or the caller must redirect to the given path.
type Decision struct {
	allowed  bool
	redirect string
}

func Allow() Decision {
	return Decision{allowed: true}
}

func RedirectTo(path string) Decision {
	return Decision{redirect: path}
}

// Allowed reports whether navigation may proceed.
func (d Decision) Allowed() bool {
	return d.allowed
}

// Redirect returns the path the caller must navigate to. Empty when the
// decision is Allow.
func (d Decision) Redirect() string {
	return d.redirect
}

// Guard decides whether a navigation to a protected view is permitted. It
// never mutates the session; its only side effects are a warning log and
// an activity event when a role check fails.
type Guard struct {
	loginPath   string
	defaultPath string
	logger      Logger
	sink        ActivitySink
}

func NewGuard() *Guard {
	return &Guard{
		loginPath:   "/login",
		defaultPath: "/dashboard",
		logger:      defLogger{},
		sink:        noopActivitySink{},
	}
}

func (g *Guard) WithLogger(logger Logger) *Guard {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// WithActivitySink configures an ActivitySink for unauthorized-access events.
func (g *Guard) WithActivitySink(sink ActivitySink) *Guard {
	g.sink = normalizeActivitySink(sink)
	return g
}

// WithLoginPath overrides the redirect target for anonymous sessions.
func (g *Guard) WithLoginPath(path string) *Guard {
	if path != "" {
		g.loginPath = path
	}
	return g
}

// WithDefaultPath overrides the redirect target for role mismatches.
func (g *Guard) WithDefaultPath(path string) *Guard {
	if path != "" {
		g.defaultPath = path
	}
	return g
}

// Authorize decides whether the session may enter a view. An anonymous
// session is sent to the login path regardless of the required role. When
// a required role is given and the session's role differs, the session is
// sent to the default path and an unauthorized-access event is emitted.
func (g *Guard) Authorize(s Session, requiredRole ...UserRole) Decision {
	if !s.Authenticated() {
		return RedirectTo(g.loginPath)
	}

	if len(requiredRole) > 0 {
		required := requiredRole[0]
		if s.Role() != required {
			g.logger.Warn("Unauthorized access attempt",
				"user", s.UserID(),
				"role", s.Role(),
				"required", required,
			)
			g.emitUnauthorized(s, required)
			return RedirectTo(g.defaultPath)
		}
	}

	return Allow()
}

func (g *Guard) emitUnauthorized(s Session, required UserRole) {
	event := ActivityEvent{
		EventType: ActivityEventUnauthorizedAccess,
		UserID:    s.UserID(),
		Metadata: map[string]any{
			"role":     string(s.Role()),
			"required": string(required),
		},
		OccurredAt: time.Now(),
	}

	if err := g.sink.Record(context.Background(), event); err != nil {
		g.logger.Error("Activity sink record failed", "event", event.EventType, "error", err)
	}
}
