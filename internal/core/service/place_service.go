package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/ports"
)

// PlaceCache abstracts the read cache (Redis). Get returns (nil, nil) on a
// miss. Set fills only when the key is free, and Invalidate must block
// re-fills for long enough to cover any read that loaded the document
// before the mutation committed. All cache failures are soft: the service
// falls through to storage.
type PlaceCache interface {
	Get(ctx context.Context, placeID string) (*domain.Place, error)
	Set(ctx context.Context, place *domain.Place) error
	Invalidate(ctx context.Context, placeID string) error
}

type placeService struct {
	places   ports.PlaceRepository
	users    ports.UserRepository
	tx       ports.TxRunner
	geocoder ports.Geocoder
	images   ports.ImageStore
	cache    PlaceCache
	log      zerolog.Logger
}

// NewPlaceService returns the PlaceService implementation responsible for
// keeping Place.OwnerID and User.PlaceIDs consistent: every create and
// delete performs its two writes inside one transaction.
func NewPlaceService(
	places ports.PlaceRepository,
	users ports.UserRepository,
	tx ports.TxRunner,
	geocoder ports.Geocoder,
	images ports.ImageStore,
	cache PlaceCache,
	log zerolog.Logger,
) ports.PlaceService {
	return &placeService{
		places:   places,
		users:    users,
		tx:       tx,
		geocoder: geocoder,
		images:   images,
		cache:    cache,
		log:      log,
	}
}

// CreatePlace persists a new place owned by callerID and appends its id to
// the owner's place set. Both writes commit together or not at all.
func (s *placeService) CreatePlace(ctx context.Context, callerID string, input ports.CreatePlaceInput) (*domain.Place, error) {
	owner, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("create place: load owner: %w", err)
	}

	location := input.Location
	if location == nil {
		coords, err := s.geocoder.Resolve(ctx, input.Address)
		if err != nil {
			return nil, err
		}
		location = &coords
	}

	now := time.Now().UTC()
	place := &domain.Place{
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Location:    *location,
		Image:       input.Image,
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Place
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.places.Create(ctx, place)
		if txErr != nil {
			return txErr
		}
		return s.users.AddPlace(ctx, owner.ID, created.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	s.log.Info().Str("place_id", created.ID).Str("owner_id", owner.ID).Msg("place created")
	return created, nil
}

// UpdatePlace applies attribute changes to a place owned by callerID. The
// owner reference itself never changes, so this is a single-document write.
func (s *placeService) UpdatePlace(ctx context.Context, callerID, placeID string, input ports.UpdatePlaceInput) (*domain.Place, error) {
	place, err := s.places.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.OwnerID != callerID {
		return nil, domain.ErrNotOwner
	}

	place.Title = input.Title
	place.Description = input.Description
	place.UpdatedAt = time.Now().UTC()

	if err := s.places.Update(ctx, place); err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}

	s.invalidate(ctx, placeID)
	return place, nil
}

// DeletePlace removes a place and pulls its id from the owner's place set
// in one transaction. The attached image is released afterwards,
// best-effort: a failure there is logged and never undoes the committed
// deletion.
func (s *placeService) DeletePlace(ctx context.Context, callerID, placeID string) error {
	place, err := s.places.FindByID(ctx, placeID)
	if err != nil {
		return err
	}

	if place.OwnerID != callerID {
		return domain.ErrNotOwner
	}

	owner, err := s.users.FindByID(ctx, place.OwnerID)
	if err != nil {
		return fmt.Errorf("delete place: load owner: %w", err)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if txErr := s.places.Delete(ctx, place.ID); txErr != nil {
			return txErr
		}
		return s.users.RemovePlace(ctx, owner.ID, place.ID)
	})
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}

	s.invalidate(ctx, placeID)

	if place.Image != "" {
		if rmErr := s.images.Remove(ctx, place.Image); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("place_id", place.ID).Str("image", place.Image).Msg("failed to release place image")
		}
	}

	s.log.Info().Str("place_id", place.ID).Str("owner_id", owner.ID).Msg("place deleted")
	return nil
}

// GetPlace is a public point-in-time read, accelerated by the cache.
func (s *placeService) GetPlace(ctx context.Context, placeID string) (*domain.Place, error) {
	if cached, err := s.cache.Get(ctx, placeID); err != nil {
		s.log.Debug().Err(err).Str("place_id", placeID).Msg("place cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	place, err := s.places.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, place); err != nil {
		s.log.Debug().Err(err).Str("place_id", placeID).Msg("place cache write failed")
	}
	return place, nil
}

// ListPlacesByOwner returns all places owned by ownerID. An empty result is
// reported as ErrPlaceNotFound: clients treat "this user has no places" the
// same as an unknown user.
func (s *placeService) ListPlacesByOwner(ctx context.Context, ownerID string) ([]*domain.Place, error) {
	places, err := s.places.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	if len(places) == 0 {
		return nil, domain.ErrPlaceNotFound
	}
	return places, nil
}

func (s *placeService) invalidate(ctx context.Context, placeID string) {
	if err := s.cache.Invalidate(ctx, placeID); err != nil {
		s.log.Debug().Err(err).Str("place_id", placeID).Msg("place cache invalidation failed")
	}
}
