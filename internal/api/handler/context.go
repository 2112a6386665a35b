package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/api/middleware"
)

// callerID extracts the verified user id injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// routing mistake and rejected outright.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextKeyUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusForbidden, "missing authentication claims")
	}
	return id, nil
}
