package api

import (
	"crypto/hmac"
	"net/http"
)

// AdminKeyHeader carries the shared operator secret on every request.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyAuth rejects any request whose admin key header does not match the
// configured secret. An empty configured secret rejects everything rather
// than letting an unconfigured deploy run open.
//
// Preflight requests pass through unauthenticated: browsers do not attach
// custom headers to OPTIONS.
func AdminKeyAuth(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(AdminKeyHeader)
			if adminKey == "" || !hmac.Equal([]byte(got), []byte(adminKey)) {
				WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
