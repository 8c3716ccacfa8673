package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hotel is a lodging place tied to the tourist catalog.
type Hotel struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Rating    int    // 1..5 stars.
	Website   string // Optional.
	Phone     string // Optional.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Restaurant is a dining place tied to the tourist catalog.
type Restaurant struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Rating    int    // Optional, 0 when unrated.
	Category  string // Optional cuisine/category label.
	Website   string // Optional.
	CreatedAt time.Time
	UpdatedAt time.Time
}
