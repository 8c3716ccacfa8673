package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. Exactly one row exists per
// user; token columns store hex digests, never raw token material.
type CredentialModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Username            string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	IsAdmin             bool      `gorm:"not null;default:false"`
	RefreshTokenHash    string    `gorm:"type:varchar(64)"`
	ResetTokenHash      string    `gorm:"type:varchar(64)"`
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
