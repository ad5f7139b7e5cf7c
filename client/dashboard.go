package client

import "context"

// DashboardAPI backs the overview screen's summary cards and chart.
type DashboardAPI struct {
	gw *Gateway
}

func NewDashboardAPI(gw *Gateway) *DashboardAPI {
	return &DashboardAPI{gw: gw}
}

func (a *DashboardAPI) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := a.gw.Get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
