package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/campushub/internal/app/system/identity"
)

// TestUser is the fixed identity used in handler tests.
var TestUser = identity.User{ID: "user-1", Name: "John Student"}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call handlers directly instead of
// going through the router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewRequest creates an HTTP request with the test user in context.
func NewRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(identity.WithUser(req.Context(), TestUser))
}

// NewJSONRequest creates an HTTP request carrying a JSON body and the
// test user in context.
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(identity.WithUser(req.Context(), TestUser))
}
