// Package model holds the GORM persistence models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`
	Address   string    `gorm:"type:varchar(255)"`
	Birthdate time.Time
	Phone     string `gorm:"type:varchar(50)"`
	TaxID     string `gorm:"type:varchar(50);column:tax_id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Credential *CredentialModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
