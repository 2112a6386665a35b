package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/api/metrics"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

// PlaceHandler handles HTTP requests for place operations.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

func toPlaceResponse(p *domain.Place) placeResponse {
	return placeResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    coordinatesRequest{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Image:       p.Image,
		Creator:     p.OwnerID,
	}
}

// Get handles GET /api/places/:pid — public read of a single place.
//
// @Summary      Get a place by id
// @Tags         places
// @Produce      json
// @Param        pid  path      string  true  "Place id"
// @Success      200  {object}  placeEnvelope
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/places/{pid} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	place, err := h.service.GetPlace(c.Request().Context(), c.Param("pid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, placeEnvelope{Place: toPlaceResponse(place)})
}

// ListByUser handles GET /api/places/user/:uid — public read of all places
// owned by a user. An empty result is a 404: "no places" and "no such user"
// are indistinguishable to clients.
//
// @Summary      List places by owner
// @Tags         places
// @Produce      json
// @Param        uid  path      string  true  "Owner user id"
// @Success      200  {object}  placesEnvelope
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/places/user/{uid} [get]
func (h *PlaceHandler) ListByUser(c echo.Context) error {
	places, err := h.service.ListPlacesByOwner(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}

	out := make([]placeResponse, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceResponse(p))
	}
	return c.JSON(http.StatusOK, placesEnvelope{Places: out})
}

// Create handles POST /api/places — authenticated; the caller becomes the
// owner.
//
// @Summary      Create a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlaceRequest  true  "Place details"
// @Success      201   {object}  placeEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Image:       req.Image,
	}
	if req.Coordinates != nil {
		input.Location = &domain.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}

	place, err := h.service.CreatePlace(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}

	metrics.PlacesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, placeEnvelope{Place: toPlaceResponse(place)})
}

// Update handles PATCH /api/places/:pid — owner only.
//
// @Summary      Update a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        pid   path      string              true  "Place id"
// @Param        body  body      updatePlaceRequest  true  "New attributes"
// @Success      200   {object}  placeEnvelope
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/places/{pid} [patch]
func (h *PlaceHandler) Update(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req updatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	place, err := h.service.UpdatePlace(c.Request().Context(), caller, c.Param("pid"), ports.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, placeEnvelope{Place: toPlaceResponse(place)})
}

// Delete handles DELETE /api/places/:pid — owner only.
//
// @Summary      Delete a place
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        pid  path      string  true  "Place id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/places/{pid} [delete]
func (h *PlaceHandler) Delete(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePlace(c.Request().Context(), caller, c.Param("pid")); err != nil {
		return err
	}

	metrics.PlacesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Place deleted successfully!"})
}
