package client

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/xinfuli/points-mall/config"
)

const (
	outcomeSuccess        = "success"
	outcomeAPIError       = "api_error"
	outcomeTransportError = "transport_error"
	outcomeCanceled       = "canceled"
	outcomeError          = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mall_client",
			Name:      "requests_total",
			Help:      "Client operations by outcome.",
		},
		[]string{"operation", "mode", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mall_client",
			Name:      "request_duration_seconds",
			Help:      "Client operation latency, including simulated mock delay.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "mode"},
	)
)

func (c *Client) observe(op config.PathKey, start time.Time, err error) {
	requestDuration.WithLabelValues(string(op), c.mode).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(string(op), c.mode, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case IsAPIError(err):
		return outcomeAPIError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	case IsTransportError(err):
		return outcomeTransportError
	default:
		return outcomeError
	}
}
