package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"place not found", domain.ErrPlaceNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"not owner", domain.ErrNotOwner, http.StatusUnauthorized},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusForbidden},
		{"invalid token", domain.ErrInvalidToken, http.StatusForbidden},
		{"expired token", domain.ErrTokenExpired, http.StatusForbidden},
		{"email taken", domain.ErrEmailTaken, http.StatusUnprocessableEntity},
		{"geocoding failed", domain.ErrGeocodingFailed, http.StatusUnprocessableEntity},
		{"unknown", errors.New("db exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatalf("expected a message in the envelope")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("delete place"), domain.ErrNotOwner)
	code, _ := renderError(t, wrapped)
	if code != http.StatusUnauthorized {
		t.Fatalf("wrapped domain error not unwrapped: got %d", code)
	}
}

func TestErrorHandler_InternalDetailNotLeaked(t *testing.T) {
	_, msg := renderError(t, errors.New("pq: connection refused on 10.0.0.3"))
	if msg != "something went wrong, please try again" {
		t.Fatalf("internal error detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusForbidden, "authentication failed"))
	if code != http.StatusForbidden || msg != "authentication failed" {
		t.Fatalf("unexpected rendering: %d %q", code, msg)
	}
}
