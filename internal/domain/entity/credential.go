package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the secret-bearing half of an account. Exactly one exists per
// User and it is deleted together with its User (cascade ownership).
//
// RefreshTokenHash holds the digest of the most recently issued refresh token;
// empty means no refresh token is outstanding. ResetTokenHash and
// ResetTokenExpiresAt are set and cleared together — never one without the
// other. Expiry of a pending reset token is lazy: the row keeps the stale pair
// until the next touch, and every consumption attempt checks the timestamp.
type Credential struct {
	ID                  uuid.UUID  // The unique ID for this credential record itself.
	UserID              uuid.UUID  // Links the credential to the User that owns it.
	Username            string     // Unique login identifier, distinct from the user's email.
	PasswordHash        string     // bcrypt hash of the current password; never empty after creation.
	IsAdmin             bool       // Privilege flag, set at creation.
	RefreshTokenHash    string     // Digest of the outstanding refresh token, or "" when none.
	ResetTokenHash      string     // Digest of the pending reset token, or "" when none.
	ResetTokenExpiresAt *time.Time // Expiry of the pending reset token; nil when none.
	CreatedAt           time.Time  // Timestamp of when this credential was created.
	UpdatedAt           time.Time  // Timestamp of the last modification.
}

// HasPendingReset reports whether a reset token is pending and still valid at
// the given instant. Both reset fields must be present; the window is checked
// on every consumption attempt rather than swept eagerly.
func (c *Credential) HasPendingReset(now time.Time) bool {
	return c.ResetTokenHash != "" && c.ResetTokenExpiresAt != nil && c.ResetTokenExpiresAt.After(now)
}
