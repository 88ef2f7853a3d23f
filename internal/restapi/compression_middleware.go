package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionMiddleware gzips responses for clients that accept it. Small bodies are left alone.
func CompressionMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
