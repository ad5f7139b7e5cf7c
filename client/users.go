package client

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UsersAPI manages marketplace accounts from the user management screen.
type UsersAPI struct {
	gw *Gateway
}

func NewUsersAPI(gw *Gateway) *UsersAPI {
	return &UsersAPI{gw: gw}
}

// CreateUserPayload is the new-account form.
type CreateUserPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (p CreateUserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
		validation.Field(&p.Role, validation.Required, validation.In("user", "provider", "admin")),
	)
}

func (a *UsersAPI) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := a.gw.Get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *UsersAPI) Create(ctx context.Context, payload CreateUserPayload) (*User, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var created User
	if err := a.gw.Post(ctx, "/admin/users", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRole changes an account's role claim at the source of truth.
func (a *UsersAPI) UpdateRole(ctx context.Context, id, role string) error {
	if err := validation.Validate(role, validation.Required, validation.In("user", "provider", "admin")); err != nil {
		return err
	}
	return a.gw.Put(ctx, fmt.Sprintf("/admin/users/%s", id), map[string]string{"role": role}, nil)
}

// Verify marks an account as identity-verified.
func (a *UsersAPI) Verify(ctx context.Context, id string) error {
	return a.gw.Put(ctx, fmt.Sprintf("/admin/verify/%s", id), nil, nil)
}

func (a *UsersAPI) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, fmt.Sprintf("/admin/users/%s", id))
}
