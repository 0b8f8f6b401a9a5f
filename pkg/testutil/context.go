package testutil

import (
	"net/http"
	"time"

	"intake-gateway/pkg/requestcontext"
)

// WithBrand attaches a resolved brand key to the request context.
// This simulates what the brand middleware would do for a routed request.
func WithBrand(req *http.Request, brandKey string) *http.Request {
	return req.WithContext(requestcontext.WithBrandKey(req.Context(), brandKey))
}

// WithFixedTime pins the request time so timestamp assertions are exact.
func WithFixedTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
