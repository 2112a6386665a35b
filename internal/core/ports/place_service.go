package ports

import (
	"context"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

// CreatePlaceInput carries everything needed to create a place. Location is
// optional; when nil the service resolves Address through the geocoder
// before touching storage.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Image       string
	Location    *domain.Coordinates
}

// UpdatePlaceInput carries the mutable attributes of a place. The owner
// reference is not among them.
type UpdatePlaceInput struct {
	Title       string
	Description string
}

// PlaceService defines place use-cases. Every mutating call takes the
// verified caller identity and enforces ownership before writing.
type PlaceService interface {
	CreatePlace(ctx context.Context, callerID string, input CreatePlaceInput) (*domain.Place, error)
	UpdatePlace(ctx context.Context, callerID, placeID string, input UpdatePlaceInput) (*domain.Place, error)
	DeletePlace(ctx context.Context, callerID, placeID string) error
	GetPlace(ctx context.Context, placeID string) (*domain.Place, error)
	ListPlacesByOwner(ctx context.Context, ownerID string) ([]*domain.Place, error)
}
