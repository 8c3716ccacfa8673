package usecase

import (
	"context"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// PageInput is the offset/limit window accepted by every listing operation.
type PageInput struct {
	Offset int
	Limit  int
}

// NearbyInput is a center-plus-radius query for geolocated catalog entries.
type NearbyInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Page      PageInput
}

// --- Region DTOs ---

// RegionInput carries the writable fields of a region.
type RegionInput struct {
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	LegendID    *uuid.UUID
}

// RegionUsecase defines region catalog operations. Write operations are
// admin-only and enforced by the delivery layer's guard.
type RegionUsecase interface {
	CreateRegion(ctx context.Context, input RegionInput) (*entity.Region, error)
	GetRegion(ctx context.Context, id uuid.UUID) (*entity.Region, error)
	ListRegions(ctx context.Context, page PageInput) ([]*entity.Region, error)
	SearchRegions(ctx context.Context, name string, page PageInput) ([]*entity.Region, error)
	NearbyRegions(ctx context.Context, input NearbyInput) ([]*entity.Region, error)
	RegionsByLegend(ctx context.Context, legendID uuid.UUID, page PageInput) ([]*entity.Region, error)
	UpdateRegion(ctx context.Context, id uuid.UUID, input RegionInput) (*entity.Region, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) error
}

// --- Hotel / Restaurant DTOs ---

// HotelInput carries the writable fields of a hotel.
type HotelInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Rating    int
	Website   string
	Phone     string
}

// RestaurantInput carries the writable fields of a restaurant.
type RestaurantInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Rating    int
	Category  string
	Website   string
}

// PlaceUsecase defines hotel and restaurant catalog operations.
type PlaceUsecase interface {
	CreateHotel(ctx context.Context, input HotelInput) (*entity.Hotel, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	ListHotels(ctx context.Context, page PageInput) ([]*entity.Hotel, error)
	SearchHotels(ctx context.Context, name string, page PageInput) ([]*entity.Hotel, error)
	NearbyHotels(ctx context.Context, input NearbyInput) ([]*entity.Hotel, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, input HotelInput) (*entity.Hotel, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error

	CreateRestaurant(ctx context.Context, input RestaurantInput) (*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	ListRestaurants(ctx context.Context, page PageInput) ([]*entity.Restaurant, error)
	SearchRestaurants(ctx context.Context, name string, page PageInput) ([]*entity.Restaurant, error)
	NearbyRestaurants(ctx context.Context, input NearbyInput) ([]*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id uuid.UUID, input RestaurantInput) (*entity.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error
}

// --- Legend / MythStory DTOs ---

// LegendInput carries the writable fields of a legend.
type LegendInput struct {
	Name        string
	Description string
	ImageURL    string
}

// MythStoryInput carries the writable fields of a myth story. UserID is the
// authenticated contributor, never taken from the body.
type MythStoryInput struct {
	Title    string
	Content  string
	ImageURL string
	RegionID uuid.UUID
	UserID   uuid.UUID
}

// StoryUsecase defines legend and myth story operations. Legends are
// admin-curated; myth stories are contributed by any authenticated user.
type StoryUsecase interface {
	CreateLegend(ctx context.Context, input LegendInput) (*entity.Legend, error)
	GetLegend(ctx context.Context, id uuid.UUID) (*entity.Legend, error)
	ListLegends(ctx context.Context, page PageInput) ([]*entity.Legend, error)
	SearchLegends(ctx context.Context, name string, page PageInput) ([]*entity.Legend, error)
	UpdateLegend(ctx context.Context, id uuid.UUID, input LegendInput) (*entity.Legend, error)
	DeleteLegend(ctx context.Context, id uuid.UUID) error

	CreateMythStory(ctx context.Context, input MythStoryInput) (*entity.MythStory, error)
	GetMythStory(ctx context.Context, id uuid.UUID) (*entity.MythStory, error)
	ListMythStories(ctx context.Context, page PageInput) ([]*entity.MythStory, error)
	MythStoriesByRegion(ctx context.Context, regionID uuid.UUID, page PageInput) ([]*entity.MythStory, error)
	MythStoriesByUser(ctx context.Context, userID uuid.UUID, page PageInput) ([]*entity.MythStory, error)
	UpdateMythStory(ctx context.Context, principal entity.Principal, id uuid.UUID, input MythStoryInput) (*entity.MythStory, error)
	DeleteMythStory(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}

// --- EventPlace DTOs ---

// EventPlaceInput carries the writable fields of an event place. HotelID and
// RestaurantID are mutually exclusive.
type EventPlaceInput struct {
	Name         string
	Description  string
	Latitude     float64
	Longitude    float64
	Type         entity.EventPlaceType
	RegionID     uuid.UUID
	LegendID     uuid.UUID
	HotelID      *uuid.UUID
	RestaurantID *uuid.UUID
}

// EventPlaceUsecase defines event place catalog operations. Write operations
// are admin-only and enforced by the delivery layer's guard.
type EventPlaceUsecase interface {
	CreateEventPlace(ctx context.Context, input EventPlaceInput) (*entity.EventPlace, error)
	GetEventPlace(ctx context.Context, id uuid.UUID) (*entity.EventPlace, error)
	ListEventPlaces(ctx context.Context, page PageInput) ([]*entity.EventPlace, error)
	EventPlacesByType(ctx context.Context, placeType entity.EventPlaceType, page PageInput) ([]*entity.EventPlace, error)
	EventPlacesByRegion(ctx context.Context, regionID uuid.UUID, page PageInput) ([]*entity.EventPlace, error)
	NearbyEventPlaces(ctx context.Context, input NearbyInput) ([]*entity.EventPlace, error)
	UpdateEventPlace(ctx context.Context, id uuid.UUID, input EventPlaceInput) (*entity.EventPlace, error)
	DeleteEventPlace(ctx context.Context, id uuid.UUID) error
}

// --- Review DTOs ---

// ReviewInput carries the writable fields of a review.
type ReviewInput struct {
	Rating     int
	Comment    string
	TargetType entity.ReviewTarget
	TargetID   uuid.UUID
	UserID     uuid.UUID
}

// ReviewSummary pairs a target's reviews page with its average rating.
type ReviewSummary struct {
	Reviews       []*entity.Review
	AverageRating float64
}

// ReviewUsecase defines review operations on hotels and restaurants.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input ReviewInput) (*entity.Review, error)
	ReviewsForTarget(ctx context.Context, targetType entity.ReviewTarget, targetID uuid.UUID, page PageInput) (*ReviewSummary, error)
	ReviewsByUser(ctx context.Context, userID uuid.UUID, page PageInput) ([]*entity.Review, error)
	DeleteReview(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}
