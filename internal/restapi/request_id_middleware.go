package restapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"eventrec.dev/internal/logging"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDMiddleware propagates or assigns an X-Request-ID and attaches it to
// the request logger.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", reqID)

		ctx := context.WithValue(r.Context(), RequestIDKey, reqID)
		ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("request_id", reqID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
