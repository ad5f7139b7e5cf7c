package client

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// DisputesAPI lists booking disputes and records resolutions.
type DisputesAPI struct {
	gw *Gateway
}

func NewDisputesAPI(gw *Gateway) *DisputesAPI {
	return &DisputesAPI{gw: gw}
}

func (a *DisputesAPI) List(ctx context.Context) ([]Dispute, error) {
	var disputes []Dispute
	if err := a.gw.Get(ctx, "/admin/disputes", &disputes); err != nil {
		return nil, err
	}
	return disputes, nil
}

// Resolve closes a dispute with the admin's notes.
func (a *DisputesAPI) Resolve(ctx context.Context, id, notes string) error {
	if err := validation.Validate(notes, validation.Required); err != nil {
		return err
	}
	return a.gw.Put(ctx, fmt.Sprintf("/admin/disputes/%s/resolve", id),
		map[string]string{"resolution_notes": notes}, nil)
}
