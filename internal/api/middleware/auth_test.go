package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/service"
)

func newAuthContext(t *testing.T, method, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue(ports.Identity{UserID: "user-1", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newAuthContext(t, http.MethodPost, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(ContextKeyUserID) != "user-1" {
			t.Fatalf("userID not set in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, _ := newAuthContext(t, http.MethodPost, "")

	err := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer "} {
		c, _ := newAuthContext(t, http.MethodPost, header)
		err := Auth(tokens)(func(c echo.Context) error { return nil })(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusForbidden {
			t.Fatalf("header %q: expected 403 HTTPError, got %v", header, err)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	other := service.NewTokenService("other-secret", time.Hour)
	signed, _ := other.Issue(ports.Identity{UserID: "user-1"})

	c, _ := newAuthContext(t, http.MethodDelete, "Bearer "+signed)
	err := Auth(tokens)(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_OptionsBypass(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, rec := newAuthContext(t, http.MethodOptions, "")

	called := false
	if err := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("pre-flight request must bypass the auth check")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
