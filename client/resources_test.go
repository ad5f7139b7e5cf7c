package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	session "github.com/serviquest/go-admin"
	"github.com/serviquest/go-admin/client"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// resourceServer records every request and replies with canned JSON per
// path, so each typed API can be checked for its wire shape.
func resourceServer(t *testing.T, responses map[string]string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var log []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		log = append(log, rec)

		if body, ok := responses[r.URL.Path]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	return server, &log
}

func newGateway(t *testing.T, server *httptest.Server) *client.Gateway {
	t.Helper()
	return client.New(server.URL, authedManager(t, session.NewMemoryStore()))
}

func TestDashboardAPI_Stats(t *testing.T) {
	server, log := resourceServer(t, map[string]string{
		"/admin/stats": `{"totalUsers": 7, "totalProviders": 3, "totalBookings": 12, "totalRevenue": 890.5}`,
	})

	api := client.NewDashboardAPI(newGateway(t, server))
	stats, err := api.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalProviders)
	assert.Equal(t, 12, stats.TotalBookings)
	assert.Equal(t, 890.5, stats.TotalRevenue)
	assert.Equal(t, recordedRequest{Method: "GET", Path: "/admin/stats"}, (*log)[0])
}

func TestServicesAPI(t *testing.T) {
	server, log := resourceServer(t, map[string]string{
		"/services": `[{"id": "svc-1", "title": "Lawn care", "category": "garden", "price": 25}]`,
	})
	api := client.NewServicesAPI(newGateway(t, server))
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		services, err := api.List(ctx)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, "Lawn care", services[0].Title)
	})

	t.Run("create validates payload", func(t *testing.T) {
		_, err := api.Create(ctx, client.ServicePayload{Category: "garden"})
		assert.Error(t, err) // missing title

		_, err = api.Create(ctx, client.ServicePayload{Title: "x", Category: "garden", Price: -1})
		assert.Error(t, err) // negative price
	})

	t.Run("create posts to /services", func(t *testing.T) {
		_, err := api.Create(ctx, client.ServicePayload{Title: "Plumbing", Category: "home", Price: 80})
		require.NoError(t, err)

		last := (*log)[len(*log)-1]
		assert.Equal(t, "POST", last.Method)
		assert.Equal(t, "/services", last.Path)
		assert.Equal(t, "Plumbing", last.Body["title"])
	})

	t.Run("update puts to /services/:id", func(t *testing.T) {
		require.NoError(t, api.Update(ctx, "svc-1", client.ServicePayload{Title: "Plumbing+", Category: "home", Price: 90}))

		last := (*log)[len(*log)-1]
		assert.Equal(t, "PUT", last.Method)
		assert.Equal(t, "/services/svc-1", last.Path)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, api.Delete(ctx, "svc-1"))

		last := (*log)[len(*log)-1]
		assert.Equal(t, "DELETE", last.Method)
		assert.Equal(t, "/services/svc-1", last.Path)
	})
}

func TestUsersAPI(t *testing.T) {
	server, log := resourceServer(t, map[string]string{
		"/admin/users": `[{"id": "u-1", "full_name": "Ada", "email": "ada@example.com", "role": "user"}]`,
	})
	api := client.NewUsersAPI(newGateway(t, server))
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		users, err := api.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Ada", users[0].FullName)
	})

	t.Run("create validates role and email", func(t *testing.T) {
		_, err := api.Create(ctx, client.CreateUserPayload{
			FullName: "Bob", Email: "not-an-email", Password: "pw", Role: "user",
		})
		assert.Error(t, err)

		_, err = api.Create(ctx, client.CreateUserPayload{
			FullName: "Bob", Email: "bob@example.com", Password: "pw", Role: "owner",
		})
		assert.Error(t, err)
	})

	t.Run("update role", func(t *testing.T) {
		require.NoError(t, api.UpdateRole(ctx, "u-1", "provider"))

		last := (*log)[len(*log)-1]
		assert.Equal(t, "PUT", last.Method)
		assert.Equal(t, "/admin/users/u-1", last.Path)
		assert.Equal(t, "provider", last.Body["role"])

		assert.Error(t, api.UpdateRole(ctx, "u-1", "owner"))
	})

	t.Run("verify", func(t *testing.T) {
		require.NoError(t, api.Verify(ctx, "u-1"))

		last := (*log)[len(*log)-1]
		assert.Equal(t, "PUT", last.Method)
		assert.Equal(t, "/admin/verify/u-1", last.Path)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, api.Delete(ctx, "u-1"))

		last := (*log)[len(*log)-1]
		assert.Equal(t, "DELETE", last.Method)
		assert.Equal(t, "/admin/users/u-1", last.Path)
	})
}

func TestProvidersAPI(t *testing.T) {
	server, log := resourceServer(t, map[string]string{
		"/auth/providers": `[{"id": "p-1", "full_name": "Grace", "verified": false}]`,
	})
	api := client.NewProvidersAPI(newGateway(t, server))
	ctx := context.Background()

	providers, err := api.List(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.False(t, providers[0].Verified)

	require.NoError(t, api.Verify(ctx, "p-1"))
	last := (*log)[len(*log)-1]
	assert.Equal(t, "PUT", last.Method)
	assert.Equal(t, "/admin/verify/p-1", last.Path)
}

func TestDisputesAPI(t *testing.T) {
	server, log := resourceServer(t, map[string]string{
		"/admin/disputes": `[{"id": "d-1", "booking_id": "b-9", "status": "open"}]`,
	})
	api := client.NewDisputesAPI(newGateway(t, server))
	ctx := context.Background()

	disputes, err := api.List(ctx)
	require.NoError(t, err)
	require.Len(t, disputes, 1)
	assert.Equal(t, "open", disputes[0].Status)

	t.Run("resolve requires notes", func(t *testing.T) {
		assert.Error(t, api.Resolve(ctx, "d-1", ""))
	})

	t.Run("resolve puts notes", func(t *testing.T) {
		require.NoError(t, api.Resolve(ctx, "d-1", "refund issued"))

		last := (*log)[len(*log)-1]
		assert.Equal(t, "PUT", last.Method)
		assert.Equal(t, "/admin/disputes/d-1/resolve", last.Path)
		assert.Equal(t, "refund issued", last.Body["resolution_notes"])
	})
}
