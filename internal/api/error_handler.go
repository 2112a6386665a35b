package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Note the split
	// the clients depend on: token failures are 403, owner mismatch is 401.
	switch {
	case errors.Is(err, domain.ErrPlaceNotFound):
		return http.StatusNotFound, "could not find a place for the provided id"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusUnauthorized, "you are not allowed to modify this place"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusForbidden, "invalid email or password"
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusForbidden, "authentication failed"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, "email already in use"
	case errors.Is(err, domain.ErrGeocodingFailed):
		return http.StatusUnprocessableEntity, "could not resolve address, please check your data"
	}

	// Unexpected error (storage included): log the real cause, return a
	// generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "something went wrong, please try again"
}
