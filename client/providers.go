package client

import (
	"context"
	"fmt"
)

// ProvidersAPI lists providers and flips their verification flag.
type ProvidersAPI struct {
	gw *Gateway
}

func NewProvidersAPI(gw *Gateway) *ProvidersAPI {
	return &ProvidersAPI{gw: gw}
}

func (a *ProvidersAPI) List(ctx context.Context) ([]Provider, error) {
	var providers []Provider
	if err := a.gw.Get(ctx, "/auth/providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (a *ProvidersAPI) Verify(ctx context.Context, id string) error {
	return a.gw.Put(ctx, fmt.Sprintf("/admin/verify/%s", id), nil, nil)
}
