package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"eventrec.dev/internal/logging"
	"eventrec.dev/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLoggingMiddleware logs every request and records its latency by route
// pattern. It must sit inside RequestIDMiddleware and directly around the mux.
func RequestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		metrics.RecordHTTPRequest(r.Method, route, rec.status, elapsed)

		logging.LogHTTPRequest(logging.FromContext(r.Context()), r.Method, r.URL.Path, rec.status, elapsed,
			slog.String("route", route))
	})
}
