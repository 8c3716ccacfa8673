package entity

import (
	"time"

	"github.com/google/uuid"
)

// Legend is a cultural legend; regions reference the legend they belong to.
type Legend struct {
	ID          uuid.UUID
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MythStory is a user-contributed story attached to a region. It is owned by
// the contributing user and cascades with it.
type MythStory struct {
	ID        uuid.UUID
	Title     string
	Content   string
	ImageURL  string
	RegionID  uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
