package ports

import (
	"context"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users. Password hashes are populated; callers must
	// not serialize them.
	List(ctx context.Context) ([]*domain.User, error)
	// AddPlace appends placeID to the user's owned set. RemovePlace pulls it
	// out. Both are called only inside the transaction that also writes the
	// corresponding place document.
	AddPlace(ctx context.Context, userID, placeID string) error
	RemovePlace(ctx context.Context, userID, placeID string) error
}
