package client

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// AuthAPI signs the admin in and out against the backend's auth endpoints.
type AuthAPI struct {
	gw *Gateway
}

func NewAuthAPI(gw *Gateway) *AuthAPI {
	return &AuthAPI{gw: gw}
}

// LoginPayload carries the credentials the login form collects.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

// RegisterPayload carries a new account request.
type RegisterPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (p RegisterPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token and establishes the session
// through the gateway's manager, so the very next request carries the
// bearer header.
func (a *AuthAPI) Login(ctx context.Context, payload LoginPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	var resp loginResponse
	if err := a.gw.Post(ctx, "/auth/login", payload, &resp); err != nil {
		return err
	}

	return a.gw.manager.Login(resp.Token)
}

// Register creates an account. It does not establish a session; the
// backend requires a fresh login afterwards.
func (a *AuthAPI) Register(ctx context.Context, payload RegisterPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	return a.gw.Post(ctx, "/auth/register", payload, nil)
}

// Logout drops the local session. The backend holds no server-side session
// state for the console, so no request is made.
func (a *AuthAPI) Logout() error {
	return a.gw.manager.Logout()
}
