package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"

	"github.com/serviquest/go-admin/password"
)

// ProfileAPI backs the settings screen: the signed-in admin's own profile,
// avatar, and password change. New passwords are assessed locally before
// the request is made; the backend still enforces its own policy.
type ProfileAPI struct {
	gw        *Gateway
	evaluator *password.Evaluator
}

func NewProfileAPI(gw *Gateway) *ProfileAPI {
	return &ProfileAPI{
		gw:        gw,
		evaluator: password.NewEvaluator(),
	}
}

// WithEvaluator replaces the password evaluator (threshold, estimator).
func (a *ProfileAPI) WithEvaluator(evaluator *password.Evaluator) *ProfileAPI {
	if evaluator != nil {
		a.evaluator = evaluator
	}
	return a
}

func (a *ProfileAPI) Get(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := a.gw.Get(ctx, "/users/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *ProfileAPI) Update(ctx context.Context, profile Profile) error {
	if err := validation.ValidateStruct(&profile,
		validation.Field(&profile.FullName, validation.Required),
		validation.Field(&profile.Email, validation.Required, is.Email),
	); err != nil {
		return err
	}
	return a.gw.Put(ctx, "/users/me", profile, nil)
}

// ChangePassword assesses the new password and, when it meets policy,
// submits the change. Rule failures come back as the evaluator's advisory
// messages; a weak-but-well-formed password fails on the score threshold.
func (a *ProfileAPI) ChangePassword(ctx context.Context, current, next string) error {
	if err := a.evaluator.Validate(next); err != nil {
		return err
	}

	if assessment := a.evaluator.Evaluate(next); !assessment.Valid {
		return goerrors.New("password is too weak", goerrors.CategoryValidation).
			WithMetadata(map[string]any{
				"score": assessment.Score,
				"label": password.StrengthLabel(assessment.Score),
			})
	}

	payload := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}
	return a.gw.Put(ctx, "/users/change-password", payload, nil)
}

// UploadAvatar posts the image as multipart form data.
func (a *ProfileAPI) UploadAvatar(ctx context.Context, filename string, data io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("avatar", filename)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to build multipart body")
	}
	if _, err := io.Copy(part, data); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to read avatar data")
	}
	if err := writer.Close(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to finalize multipart body")
	}

	return a.gw.send(ctx, http.MethodPost, "/users/avatar", writer.FormDataContentType(), &buf, nil)
}
