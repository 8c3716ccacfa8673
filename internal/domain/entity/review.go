package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewTarget identifies the kind of place a review is about.
type ReviewTarget string

const (
	ReviewTargetHotel      ReviewTarget = "hotel"
	ReviewTargetRestaurant ReviewTarget = "restaurant"
)

// Valid reports whether the target kind is one of the known values.
func (t ReviewTarget) Valid() bool {
	return t == ReviewTargetHotel || t == ReviewTargetRestaurant
}

// Review is a user's rating and comment on a hotel or restaurant. Reviews are
// owned by the authoring user and cascade with it.
type Review struct {
	ID         uuid.UUID
	Rating     int // 1..5.
	Comment    string
	TargetType ReviewTarget
	TargetID   uuid.UUID
	UserID     uuid.UUID
	CreatedAt  time.Time
}
