package client

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ServicesAPI manages marketplace listings.
type ServicesAPI struct {
	gw *Gateway
}

func NewServicesAPI(gw *Gateway) *ServicesAPI {
	return &ServicesAPI{gw: gw}
}

// ServicePayload is the create/update form for a listing.
type ServicePayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

func (p ServicePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.Price, validation.Min(0.0)),
	)
}

func (a *ServicesAPI) List(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := a.gw.Get(ctx, "/services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (a *ServicesAPI) Create(ctx context.Context, payload ServicePayload) (*Service, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var created Service
	if err := a.gw.Post(ctx, "/services", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *ServicesAPI) Update(ctx context.Context, id string, payload ServicePayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	return a.gw.Put(ctx, fmt.Sprintf("/services/%s", id), payload, nil)
}

func (a *ServicesAPI) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, fmt.Sprintf("/services/%s", id))
}
