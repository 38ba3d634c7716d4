package api

import (
	"net/http"
	"strings"
)

type CORSOptions struct {
	AllowedMethods []string
	AllowedHeaders []string
}

// CORSMiddleware sets permissive headers for the admin UI, which is served
// from a different origin than this backend. Any origin is allowed; the
// admin key header is what actually gates access.
func CORSMiddleware(opts CORSOptions) func(http.Handler) http.Handler {
	allowedMethods := opts.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	allowedHeaders := opts.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type", "X-Admin-Key"}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(allowedMethods, ","))

			next.ServeHTTP(w, r)
		})
	}
}
