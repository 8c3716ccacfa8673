package repository

import (
	"context"
	"errors"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHotelNotFound is returned when no hotel matches the lookup.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRestaurantNotFound is returned when no restaurant matches the lookup.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// HotelRepository defines persistence operations for hotels.
type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindAll(ctx context.Context, page Page) ([]*entity.Hotel, error)
	SearchByName(ctx context.Context, name string, page Page) ([]*entity.Hotel, error)

	// FindNearby returns hotels within radiusKm kilometers of the given
	// coordinate, ordered by distance ascending.
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, page Page) ([]*entity.Hotel, error)

	Update(ctx context.Context, hotel *entity.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RestaurantRepository defines persistence operations for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindAll(ctx context.Context, page Page) ([]*entity.Restaurant, error)
	SearchByName(ctx context.Context, name string, page Page) ([]*entity.Restaurant, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, page Page) ([]*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
}
