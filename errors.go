package session

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeTokenMalformed = "session_token_malformed"
	TextCodeTokenExpired   = "session_token_expired"
	TextCodeAuthRejected   = "session_auth_rejected"
	TextCodeStoreFailure   = "session_store_failure"
)

// ErrTokenMalformed is returned when a token is structurally unparsable:
// wrong segment count, bad base64url, or a payload that is not JSON.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryBadInput).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeBadRequest)

// ErrTokenExpired is returned when a token decodes but its exp claim is in
// the past at decode time.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrAuthorizationDenied is returned when the backend rejects a bearer
// credential (401/403). The session has already been cleared by the time a
// caller sees this error.
var ErrAuthorizationDenied = errors.New("authorization denied", errors.CategoryAuth).
	WithTextCode(TextCodeAuthRejected).
	WithCode(errors.CodeUnauthorized)

// ErrStoreFailure wraps persistence failures from a Store implementation.
var ErrStoreFailure = errors.New("token store failure", errors.CategoryInternal).
	WithTextCode(TextCodeStoreFailure)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
