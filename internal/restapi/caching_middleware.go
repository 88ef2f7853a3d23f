package restapi

import (
	"net/http"
	"strconv"
	"time"
)

// CacheControlMiddleware marks successful responses as publicly cacheable for
// maxAge. Error responses and a zero maxAge are sent as no-store.
func CacheControlMiddleware(maxAge time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&cacheControlWriter{ResponseWriter: w, maxAge: maxAge}, r)
	})
}

type cacheControlWriter struct {
	http.ResponseWriter
	maxAge      time.Duration
	wroteHeader bool
}

func (cw *cacheControlWriter) WriteHeader(status int) {
	if !cw.wroteHeader {
		cw.wroteHeader = true
		value := "no-store"
		if cw.maxAge > 0 && status < http.StatusBadRequest {
			value = "public, max-age=" + strconv.Itoa(int(cw.maxAge.Seconds()))
		}
		cw.Header().Set("Cache-Control", value)
	}
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *cacheControlWriter) Write(b []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.ResponseWriter.Write(b)
}

func (cw *cacheControlWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}
