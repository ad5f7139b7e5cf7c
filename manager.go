package session

import (
	"context"
	"sync"
	"time"
)

// Manager owns the current Session and is the sole writer of the persisted
// token. Every transition happens under the lock, so a read that follows a
// transition always sees the new state; there is no window where a
// rejected credential still looks authenticated.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	current Session
	logger  Logger
	sink    ActivitySink
}

// NewManager returns a Manager in the anonymous state. It does not touch
// the store; call Restore to pick up a previously persisted token.
func NewManager(store Store) *Manager {
	return &Manager{
		store:  store,
		logger: defLogger{},
		sink:   noopActivitySink{},
	}
}

func (m *Manager) WithLogger(logger Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithActivitySink configures an ActivitySink for emitting session events.
func (m *Manager) WithActivitySink(sink ActivitySink) *Manager {
	m.sink = normalizeActivitySink(sink)
	return m
}

// Restore reads any token a previous run persisted. A token that no longer
// decodes is discarded through the logout path; Restore only fails when
// the store itself is unreachable.
func (m *Manager) Restore() error {
	token, err := m.store.Get()
	if err != nil {
		m.logger.Error("Restore failed to read token store", "error", err)
		return err
	}

	if token == "" {
		return nil
	}

	claims, err := Decode(token)
	if err != nil {
		m.logger.Warn("Restore discarding undecodable persisted token", "error", err)
		m.emit(ActivityEventRestoreDiscarded, "", map[string]any{
			"error": err.Error(),
		})
		return m.clear()
	}

	m.mu.Lock()
	m.current = Session{Token: token, Claims: claims}
	m.mu.Unlock()

	m.logger.Debug("Restore resumed session", "user", claims.UserID())
	return nil
}

// Login decodes the token and, only on success, stores it in memory and in
// the Store. A token that fails to decode persists nothing and leaves the
// manager anonymous.
func (m *Manager) Login(token string) error {
	claims, err := Decode(token)
	if err != nil {
		m.logger.Error("Login failed to decode token", "error", err)
		m.emit(ActivityEventLoginFailure, "", map[string]any{
			"error": err.Error(),
		})
		if clearErr := m.clear(); clearErr != nil {
			m.logger.Error("Login failed to clear session after decode error", "error", clearErr)
		}
		return err
	}

	m.mu.Lock()
	m.current = Session{Token: token, Claims: claims}
	m.mu.Unlock()

	if err := m.store.Set(token); err != nil {
		m.logger.Error("Login failed to persist token", "error", err)
		return err
	}

	m.emit(ActivityEventLoginSuccess, claims.UserID(), nil)
	return nil
}

// Logout transitions to anonymous and evicts the persisted token. It is
// idempotent; logging out an anonymous manager is not an error. Logout
// never navigates.
func (m *Manager) Logout() error {
	userID := m.Current().UserID()

	if err := m.clear(); err != nil {
		return err
	}

	m.emit(ActivityEventLogout, userID, nil)
	return nil
}

// ForceLogout runs the logout path in response to a rejected credential.
// The gateway calls this before its request error is returned, so the next
// guard check already sees an anonymous session.
func (m *Manager) ForceLogout(reason string) error {
	userID := m.Current().UserID()

	if err := m.clear(); err != nil {
		return err
	}

	m.logger.Warn("Session force-logged out", "reason", reason, "user", userID)
	m.emit(ActivityEventForcedLogout, userID, map[string]any{
		"reason": reason,
	})
	return nil
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token returns the raw bearer token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Token
}

// clear drops the in-memory session first so readers never observe a token
// the store still holds, then evicts the persisted copy.
func (m *Manager) clear() error {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()

	return m.store.Clear()
}

func (m *Manager) emit(eventType ActivityEventType, userID string, metadata map[string]any) {
	event := ActivityEvent{
		EventType:  eventType,
		UserID:     userID,
		Metadata:   metadata,
		OccurredAt: time.Now(),
	}

	if err := m.sink.Record(context.Background(), event); err != nil {
		m.logger.Error("Activity sink record failed", "event", eventType, "error", err)
	}
}
