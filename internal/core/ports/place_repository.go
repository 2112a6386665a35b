package ports

import (
	"context"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	// Create inserts the place and returns it with its assigned id.
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
	Delete(ctx context.Context, id string) error
}
