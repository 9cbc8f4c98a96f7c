// Package identity carries the portal's single session identity.
//
// The portal runs without authentication: one user, configured at
// startup, performs every operation. The identity travels on the
// request context so handlers read it the same way they would read a
// session user if a real auth layer were added.
package identity

import (
	"context"
	"net/http"
)

// User is the acting identity for all operations.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ctxKey struct{}

// Middleware attaches the configured user to every request.
func Middleware(u User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// WithUser returns a context carrying the user.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// CurrentUser returns the user on the request context. The zero User
// means the middleware was not installed.
func CurrentUser(r *http.Request) User {
	u, _ := r.Context().Value(ctxKey{}).(User)
	return u
}
