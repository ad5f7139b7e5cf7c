package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	session "github.com/serviquest/go-admin"
)

func TestManager_Login(t *testing.T) {
	store := session.NewMemoryStore()
	sink := &recordingSink{}
	manager := session.NewManager(store).WithActivitySink(sink)

	token := signToken(t, adminClaims("user-1"))
	require.NoError(t, manager.Login(token))

	current := manager.Current()
	assert.True(t, current.Authenticated())
	assert.Equal(t, "user-1", current.UserID())
	assert.Equal(t, session.RoleAdmin, current.Role())

	persisted, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, token, persisted)

	assert.Contains(t, sink.types(), session.ActivityEventLoginSuccess)
}

func TestManager_LoginMalformedToken(t *testing.T) {
	store := session.NewMemoryStore()
	sink := &recordingSink{}
	manager := session.NewManager(store).WithActivitySink(sink)

	err := manager.Login("not-a-token")
	require.Error(t, err)
	assert.True(t, session.IsMalformedError(err))

	// Nothing persisted, session anonymous.
	persisted, storeErr := store.Get()
	require.NoError(t, storeErr)
	assert.Empty(t, persisted)
	assert.False(t, manager.Current().Authenticated())

	assert.Contains(t, sink.types(), session.ActivityEventLoginFailure)
}

func TestManager_LoginExpiredToken(t *testing.T) {
	store := session.NewMemoryStore()
	manager := session.NewManager(store)

	claims := adminClaims("user-2")
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	err := manager.Login(signToken(t, claims))
	assert.ErrorIs(t, err, session.ErrTokenExpired)
	assert.False(t, manager.Current().Authenticated())
}

func TestManager_FailedLoginReturnsToAnonymous(t *testing.T) {
	store := session.NewMemoryStore()
	manager := session.NewManager(store)

	require.NoError(t, manager.Login(signToken(t, adminClaims("user-3"))))
	require.True(t, manager.Current().Authenticated())

	require.Error(t, manager.Login("broken"))

	assert.False(t, manager.Current().Authenticated())
	persisted, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestManager_Logout(t *testing.T) {
	store := session.NewMemoryStore()
	sink := &recordingSink{}
	manager := session.NewManager(store).WithActivitySink(sink)

	require.NoError(t, manager.Login(signToken(t, adminClaims("user-4"))))
	require.NoError(t, manager.Logout())

	assert.False(t, manager.Current().Authenticated())
	assert.Empty(t, manager.Token())

	persisted, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, persisted)

	assert.Contains(t, sink.types(), session.ActivityEventLogout)
}

func TestManager_LogoutIdempotent(t *testing.T) {
	store := session.NewMemoryStore()
	manager := session.NewManager(store)

	require.NoError(t, manager.Login(signToken(t, adminClaims("user-5"))))

	require.NoError(t, manager.Logout())
	require.NoError(t, manager.Logout())

	assert.False(t, manager.Current().Authenticated())
	persisted, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestManager_Restore(t *testing.T) {
	t.Run("resumes a valid persisted token", func(t *testing.T) {
		store := session.NewMemoryStore()
		token := signToken(t, adminClaims("user-6"))
		require.NoError(t, store.Set(token))

		manager := session.NewManager(store)
		require.NoError(t, manager.Restore())

		current := manager.Current()
		assert.True(t, current.Authenticated())
		assert.Equal(t, "user-6", current.UserID())
		assert.Equal(t, token, manager.Token())
	})

	t.Run("empty store stays anonymous", func(t *testing.T) {
		manager := session.NewManager(session.NewMemoryStore())
		require.NoError(t, manager.Restore())
		assert.False(t, manager.Current().Authenticated())
	})

	t.Run("corrupt persisted token self-heals", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Set("corrupted-token"))

		sink := &recordingSink{}
		manager := session.NewManager(store).WithActivitySink(sink)
		require.NoError(t, manager.Restore())

		assert.False(t, manager.Current().Authenticated())
		persisted, err := store.Get()
		require.NoError(t, err)
		assert.Empty(t, persisted)

		assert.Contains(t, sink.types(), session.ActivityEventRestoreDiscarded)
	})

	t.Run("expired persisted token self-heals", func(t *testing.T) {
		store := session.NewMemoryStore()
		claims := adminClaims("user-7")
		claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		require.NoError(t, store.Set(signToken(t, claims)))

		manager := session.NewManager(store)
		require.NoError(t, manager.Restore())

		assert.False(t, manager.Current().Authenticated())
		persisted, err := store.Get()
		require.NoError(t, err)
		assert.Empty(t, persisted)
	})
}

func TestManager_ForceLogout(t *testing.T) {
	store := session.NewMemoryStore()
	sink := &recordingSink{}
	manager := session.NewManager(store).WithActivitySink(sink)

	require.NoError(t, manager.Login(signToken(t, adminClaims("user-8"))))
	require.NoError(t, manager.ForceLogout("http 403 on /admin/users"))

	assert.False(t, manager.Current().Authenticated())
	persisted, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, persisted)

	require.Contains(t, sink.types(), session.ActivityEventForcedLogout)
	for _, event := range sink.events {
		if event.EventType == session.ActivityEventForcedLogout {
			assert.Equal(t, "user-8", event.UserID)
			assert.Equal(t, "http 403 on /admin/users", event.Metadata["reason"])
		}
	}
}

func TestManager_TransitionVisibleImmediately(t *testing.T) {
	store := session.NewMemoryStore()
	manager := session.NewManager(store)
	guard := session.NewGuard()

	require.NoError(t, manager.Login(signToken(t, adminClaims("user-9"))))
	require.True(t, guard.Authorize(manager.Current()).Allowed())

	require.NoError(t, manager.Logout())

	// The very next guard check sees the anonymous state.
	decision := guard.Authorize(manager.Current())
	assert.False(t, decision.Allowed())
	assert.Equal(t, "/login", decision.Redirect())
}
