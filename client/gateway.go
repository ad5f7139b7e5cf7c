// Package client is the console's single outbound HTTP surface. A Gateway
// attaches the current bearer token to every request and collapses the
// session when the backend rejects it; the typed APIs built on top mirror
// the admin screens (stats, services, users, providers, disputes,
// profile).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	session "github.com/serviquest/go-admin"
)

// Gateway is the preconfigured HTTP entry point every resource API calls
// through. It reads the token from the session Manager on each request and
// never caches it, so a logout is visible to the very next call.
type Gateway struct {
	baseURL        string
	http           *http.Client
	manager        *session.Manager
	logger         session.Logger
	loginPath      string
	onAuthRejected func(path string)
	metrics        bool
}

// New returns a Gateway for the given backend base URL.
func New(baseURL string, manager *session.Manager) *Gateway {
	return &Gateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 30 * time.Second},
		manager:   manager,
		logger:    session.DefaultLogger(),
		loginPath: "/login",
		metrics:   true,
	}
}

func (g *Gateway) WithLogger(logger session.Logger) *Gateway {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// WithHTTPClient replaces the underlying http client (timeouts, proxies).
func (g *Gateway) WithHTTPClient(client *http.Client) *Gateway {
	if client != nil {
		g.http = client
	}
	return g
}

// WithAuthRejectedHandler subscribes the navigation owner to credential
// rejections. The handler receives the login path to navigate to; the
// gateway itself never navigates.
func (g *Gateway) WithAuthRejectedHandler(handler func(path string)) *Gateway {
	g.onAuthRejected = handler
	return g
}

// WithLoginPath overrides the path passed to the rejection handler.
func (g *Gateway) WithLoginPath(path string) *Gateway {
	if path != "" {
		g.loginPath = path
	}
	return g
}

// WithMetrics toggles the prometheus request counters.
func (g *Gateway) WithMetrics(enabled bool) *Gateway {
	g.metrics = enabled
	return g
}

func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	return g.send(ctx, method, path, "application/json", reader, out)
}

// send runs one request through the interception pipeline: bearer attach,
// rejection handling, error mapping, response decode.
func (g *Gateway) send(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to build request")
	}

	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if token := g.manager.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.count(method, "error")
		return goerrors.Wrap(err, goerrors.CategoryOperation, "request failed")
	}
	defer resp.Body.Close()

	g.count(method, statusClass(resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return g.rejected(method, path, resp)
	}

	if resp.StatusCode >= 400 {
		return g.apiError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to decode response body")
		}
	}

	return nil
}

// rejected handles 401/403: the session is cleared before this returns,
// so a guard consulted right after already sees anonymous state. The
// original call still fails with ErrAuthorizationDenied so page-level
// error handling runs.
func (g *Gateway) rejected(method, path string, resp *http.Response) error {
	g.logger.Warn("Bearer credential rejected", "method", method, "path", path, "status", resp.StatusCode)
	authRejections.Inc()

	if err := g.manager.ForceLogout(fmt.Sprintf("http %d on %s", resp.StatusCode, path)); err != nil {
		g.logger.Error("Forced logout failed", "error", err)
	}

	if g.onAuthRejected != nil {
		g.onAuthRejected(g.loginPath)
	}

	clone := session.ErrAuthorizationDenied.Clone()
	if clone == nil {
		return session.ErrAuthorizationDenied
	}
	return clone.WithMetadata(map[string]any{
		"status": resp.StatusCode,
		"path":   path,
	})
}

func (g *Gateway) apiError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = payload.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func (g *Gateway) count(method, status string) {
	if !g.metrics {
		return
	}
	requestsTotal.WithLabelValues(method, status).Inc()
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// APIError is a non-auth backend failure, passed through to the caller
// untouched so each screen decides how to surface it.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
