// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile half of an account: the tourist's identity data.
// Secret material never lives here; it belongs to the user's Credential.
type User struct {
	ID        uuid.UUID // The unique identifier for the user, generated at registration.
	Email     string    // Unique across all accounts; the human identity for uniqueness checks.
	Name      string    // First name.
	LastName  string    // Last name.
	Address   string    // Postal address.
	Birthdate time.Time // Date of birth.
	Phone     string    // Optional contact phone number.
	TaxID     string    // Optional tax identifier (CUIT).
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Principal is the authenticated caller extracted from a verified access
// token. Handlers pass it explicitly into every flow that needs it.
type Principal struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}
