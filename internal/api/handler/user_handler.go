package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

// UserHandler handles signup, login and user listing.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /api/users/signup.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		UserID: result.UserID,
		Email:  result.Email,
		Token:  result.Token,
	})
}

// Login handles POST /api/users/login.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		UserID: result.UserID,
		Email:  result.Email,
		Token:  result.Token,
	})
}

// List handles GET /api/users — public listing without credentials.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersEnvelope
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		places := u.PlaceIDs
		if places == nil {
			places = []string{}
		}
		out = append(out, userResponse{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Image:  u.Image,
			Places: places,
		})
	}
	return c.JSON(http.StatusOK, usersEnvelope{Users: out})
}
