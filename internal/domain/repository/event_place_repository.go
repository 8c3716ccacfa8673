package repository

import (
	"context"
	"errors"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventPlaceNotFound is returned when no event place matches the lookup.
var ErrEventPlaceNotFound = errors.New("event place not found")

// EventPlaceRepository defines persistence operations for event places.
type EventPlaceRepository interface {
	Create(ctx context.Context, place *entity.EventPlace) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EventPlace, error)
	FindAll(ctx context.Context, page Page) ([]*entity.EventPlace, error)
	FindByType(ctx context.Context, placeType entity.EventPlaceType, page Page) ([]*entity.EventPlace, error)
	FindByRegion(ctx context.Context, regionID uuid.UUID, page Page) ([]*entity.EventPlace, error)

	// FindNearby returns event places within radiusKm kilometers of the given
	// coordinate, ordered by distance ascending.
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, page Page) ([]*entity.EventPlace, error)

	Update(ctx context.Context, place *entity.EventPlace) error
	Delete(ctx context.Context, id uuid.UUID) error
}
