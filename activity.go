package session

import (
	"context"
	"time"
)

// ActivityEventType enumerates supported activity categories.
type ActivityEventType string

const (
	ActivityEventLoginSuccess       ActivityEventType = "session.login.success"
	ActivityEventLoginFailure       ActivityEventType = "session.login.failure"
	ActivityEventLogout             ActivityEventType = "session.logout"
	ActivityEventForcedLogout       ActivityEventType = "session.logout.forced"
	ActivityEventRestoreDiscarded   ActivityEventType = "session.restore.discarded"
	ActivityEventUnauthorizedAccess ActivityEventType = "session.access.unauthorized"
)

// ActivityEvent captures audit-friendly information about a session
// transition or a rejected navigation.
type ActivityEvent struct {
	EventType  ActivityEventType
	UserID     string
	Metadata   map[string]any
	OccurredAt time.Time
}

// ActivitySink consumes activity events for auditing/telemetry purposes.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivitySinkFunc adapts a function to the ActivitySink interface.
type ActivitySinkFunc func(ctx context.Context, event ActivityEvent) error

// Record implements ActivitySink.
func (f ActivitySinkFunc) Record(ctx context.Context, event ActivityEvent) error {
	if f == nil {
		return nil
	}
	return f(ctx, event)
}

type noopActivitySink struct{}

func (noopActivitySink) Record(context.Context, ActivityEvent) error {
	return nil
}

func normalizeActivitySink(s ActivitySink) ActivitySink {
	if s == nil {
		return noopActivitySink{}
	}
	return s
}
