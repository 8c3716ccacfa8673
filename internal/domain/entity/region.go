package entity

import (
	"time"

	"github.com/google/uuid"
)

// Region is a geographic area with an associated legend. Myth stories and
// tourist places hang off regions.
type Region struct {
	ID          uuid.UUID
	Name        string
	Description string
	Latitude    float64 // Decimal degrees, -90..90.
	Longitude   float64 // Decimal degrees, -180..180.
	LegendID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
