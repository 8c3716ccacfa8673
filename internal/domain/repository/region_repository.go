package repository

import (
	"context"
	"errors"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRegionNotFound is returned when no region matches the lookup.
var ErrRegionNotFound = errors.New("region not found")

// RegionRepository defines persistence operations for regions.
type RegionRepository interface {
	Create(ctx context.Context, region *entity.Region) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error)
	FindAll(ctx context.Context, page Page) ([]*entity.Region, error)

	// SearchByName returns regions whose name contains the given fragment,
	// matched case-insensitively.
	SearchByName(ctx context.Context, name string, page Page) ([]*entity.Region, error)

	// FindNearby returns regions within radiusKm kilometers of the given
	// coordinate, ordered by distance ascending.
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, page Page) ([]*entity.Region, error)

	// FindByLegend returns regions associated with the given legend.
	FindByLegend(ctx context.Context, legendID uuid.UUID, page Page) ([]*entity.Region, error)

	Update(ctx context.Context, region *entity.Region) error
	Delete(ctx context.Context, id uuid.UUID) error
}
