package ports

import (
	"context"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

// Geocoder resolves a human-readable address to coordinates. Failures map
// to domain.ErrGeocodingFailed and never touch storage.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Coordinates, error)
}

// ImageStore manages uploaded place images. Remove is best-effort: it runs
// after the owning transaction has committed and its failure is logged, not
// surfaced.
type ImageStore interface {
	Remove(ctx context.Context, path string) error
}
