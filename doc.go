// Package session implements the client-side authentication core of the
// ServiQuest admin console: persisted bearer tokens, unverified claim
// decoding, the session state machine, and route guard decisions.
//
// Session lifecycle:
//   - A Manager owns the in-memory Session value and is the only writer of
//     the persisted token. Restore reads whatever token a previous run left
//     behind; a corrupt token is discarded through the logout path so a bad
//     persisted value never wedges the console.
//   - Login decodes before it persists. A token that fails to decode is
//     reported to the caller and never reaches the Store.
//   - Logout is idempotent and never navigates. Redirect targets come from
//     Guard decisions and from the API gateway's rejection callback.
//
// Token stores:
//   - Store is a passive persistence slot (Get/Set/Clear). MemoryStore,
//     FileStore, and RedisStore cover tests, single-host runs, and
//     deployments that share a session across processes.
//
// Activity sinks:
//   - ActivitySink is a light-weight audit emitter used by the Manager and
//     Guard to describe login, logout, forced logout, and unauthorized
//     access events. Sinks run best-effort (errors are logged) so you can
//     forward to a database or queue without blocking session transitions.
//
// Claims decoded here are display data. The backend re-checks every
// permission server-side; nothing in this package is a trust boundary.
package session
