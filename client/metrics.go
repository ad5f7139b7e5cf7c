package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "serviquest_admin_requests_total",
		Help: "Total number of outbound API requests",
	}, []string{"method", "status"})

	authRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "serviquest_admin_auth_rejections_total",
		Help: "Total number of bearer credentials rejected by the backend",
	})
)
