// Copyright (c) 2026 Bookvault. All rights reserved.

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minhngoc/bookvault/internal/platform/metrics"
)

// # Request Metrics

// Metrics records Prometheus counters and latency histograms per request.
//
// The path label uses the chi route pattern (e.g. /book/{id}), not the raw
// URL, to keep label cardinality bounded.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request)

			// The route pattern is only known after routing has happened
			routePattern := chi.RouteContext(request.Context()).RoutePattern()
			if routePattern == "" {
				routePattern = "unmatched"
			}

			metrics.RequestsTotal.WithLabelValues(
				request.Method,
				routePattern,
				strconv.Itoa(wrappedWriter.status),
			).Inc()

			metrics.RequestDuration.WithLabelValues(
				request.Method,
				routePattern,
			).Observe(time.Since(startTime).Seconds())
		})
	}
}
