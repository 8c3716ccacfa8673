package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventPlaceType classifies a tourist event or place.
type EventPlaceType string

const (
	EventPlaceFestival   EventPlaceType = "festival"
	EventPlaceRoute      EventPlaceType = "ruta"
	EventPlaceEvent      EventPlaceType = "evento"
	EventPlaceAttraction EventPlaceType = "atractivo"
)

// Valid reports whether the type is one of the known values.
func (t EventPlaceType) Valid() bool {
	switch t {
	case EventPlaceFestival, EventPlaceRoute, EventPlaceEvent, EventPlaceAttraction:
		return true
	}

	return false
}

// EventPlace is a cultural event or tourist attraction anchored to a region
// and its legend. It can optionally reference the hotel or the restaurant
// hosting it, but never both.
type EventPlace struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Latitude     float64
	Longitude    float64
	Type         EventPlaceType
	RegionID     uuid.UUID
	LegendID     uuid.UUID
	HotelID      *uuid.UUID
	RestaurantID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
