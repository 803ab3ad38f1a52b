package services

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestCounter tracks how many procedure calls the process has served.
// The in-process total backs GetRequestCount; the labelled Prometheus
// counter is what /metrics exposes.
type RequestCounter struct {
	total    atomic.Uint64
	requests *prometheus.CounterVec
}

func NewRequestCounter(reg prometheus.Registerer) *RequestCounter {
	return &RequestCounter{
		requests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpc_requests_total",
				Help: "Total number of remote procedure calls served",
			},
			[]string{"procedure"},
		),
	}
}

func (c *RequestCounter) Increment(procedure string) {
	c.total.Add(1)
	c.requests.WithLabelValues(procedure).Inc()
}

func (c *RequestCounter) Count() uint64 {
	return c.total.Load()
}
