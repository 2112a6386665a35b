package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central error handler).
type errorResponse struct {
	Message string `json:"message"`
}

// messageResponse is the envelope for operations that return no resource.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// createPlaceRequest mirrors the public contract: coordinates are optional
// and resolved from the address when absent.
type createPlaceRequest struct {
	Title       string              `json:"title"       validate:"required"`
	Description string              `json:"description" validate:"required,min=5"`
	Address     string              `json:"address"     validate:"required"`
	Image       string              `json:"image"       validate:"required"`
	Coordinates *coordinatesRequest `json:"coordinates,omitempty"`
}

type updatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// --- Response types ---

// placeResponse is the serialized entity: string ids, never internal
// representations.
type placeResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Address     string             `json:"address"`
	Location    coordinatesRequest `json:"location"`
	Image       string             `json:"image,omitempty"`
	Creator     string             `json:"creator"`
}

// placeEnvelope keys the response by resource name.
type placeEnvelope struct {
	Place placeResponse `json:"place"`
}

type placesEnvelope struct {
	Places []placeResponse `json:"places"`
}
