// Copyright (c) 2026 Bookvault. All rights reserved.

// Package metrics defines the Prometheus instruments exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts finished HTTP requests by route pattern and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookvault_api_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration observes request latency by route pattern.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookvault_api_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// UploadsTotal counts book-file ingest attempts by outcome.
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookvault_uploads_total",
			Help: "Total number of file upload attempts.",
		},
		[]string{"outcome"},
	)

	// StagedSweepsTotal counts staged uploads removed by the background sweeper.
	StagedSweepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookvault_staged_sweeps_total",
			Help: "Total number of expired staged uploads reclaimed.",
		},
	)
)

// Upload outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeFailed      = "failed"
	OutcomeCompensated = "compensated"
)
