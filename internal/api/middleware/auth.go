package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/api/metrics"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

// ContextKeyUserID is the echo context key under which Auth stores the
// verified caller id.
const ContextKeyUserID = "userID"

// Auth verifies the bearer token and injects the caller identity into the
// request context. OPTIONS requests pass through unchecked: CORS pre-flight
// carries no credentials by protocol design. Every failure is a 403 — the
// middleware is purely a gate and never consults storage.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "authentication failed")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "authentication failed")
			}

			identity, err := verifier.Verify(parts[1])
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "authentication failed")
			}

			c.Set(ContextKeyUserID, identity.UserID)
			return next(c)
		}
	}
}
