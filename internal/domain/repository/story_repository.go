package repository

import (
	"context"
	"errors"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLegendNotFound is returned when no legend matches the lookup.
var ErrLegendNotFound = errors.New("legend not found")

// ErrMythStoryNotFound is returned when no myth story matches the lookup.
var ErrMythStoryNotFound = errors.New("myth story not found")

// LegendRepository defines persistence operations for legends.
type LegendRepository interface {
	Create(ctx context.Context, legend *entity.Legend) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Legend, error)
	FindAll(ctx context.Context, page Page) ([]*entity.Legend, error)
	SearchByName(ctx context.Context, name string, page Page) ([]*entity.Legend, error)
	Update(ctx context.Context, legend *entity.Legend) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MythStoryRepository defines persistence operations for user-submitted
// myth stories.
type MythStoryRepository interface {
	Create(ctx context.Context, story *entity.MythStory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MythStory, error)
	FindAll(ctx context.Context, page Page) ([]*entity.MythStory, error)

	// FindByRegion returns stories attached to the given region, newest first.
	FindByRegion(ctx context.Context, regionID uuid.UUID, page Page) ([]*entity.MythStory, error)

	// FindByUser returns stories submitted by the given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.MythStory, error)

	Update(ctx context.Context, story *entity.MythStory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
