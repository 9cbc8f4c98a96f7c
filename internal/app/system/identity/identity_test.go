package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campushub/campushub/internal/app/system/identity"
)

func TestMiddleware_AttachesUser(t *testing.T) {
	u := identity.User{ID: "user-1", Name: "John Student"}

	var got identity.User
	h := identity.Middleware(u)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = identity.CurrentUser(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != u {
		t.Errorf("CurrentUser: got %+v, want %+v", got, u)
	}
}

func TestCurrentUser_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	got := identity.CurrentUser(req)
	if got != (identity.User{}) {
		t.Errorf("expected zero user, got %+v", got)
	}
}
