package repository

import (
	"context"
	"errors"
	"time"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when no credential row matches the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// ErrStaleToken is returned by compare-and-swap token mutations when the
// stored value no longer matches the expected one. The caller treats it as
// a lost race: another request already rotated or consumed the token.
var ErrStaleToken = errors.New("stored token does not match expected value")

// CredentialRepository defines persistence operations for login credentials.
//
// The token mutation methods are intentionally narrow: each one is a single
// conditional UPDATE so that concurrent refresh, password-change and
// password-reset requests serialize at the database instead of in Go code.
type CredentialRepository interface {
	// Create persists a new credential entity to the storage.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUsername retrieves a credential by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// FindByUserID retrieves the credential belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// SetRefreshTokenHash unconditionally stores the digest of a freshly
	// issued refresh token. Used on login, where any previous session is
	// superseded.
	SetRefreshTokenHash(ctx context.Context, userID uuid.UUID, digest string) error

	// RotateRefreshTokenHash replaces the stored refresh token digest only
	// if it still equals expectedDigest. Returns ErrStaleToken when the
	// stored digest has already changed.
	RotateRefreshTokenHash(ctx context.Context, userID uuid.UUID, expectedDigest, newDigest string) error

	// ClearRefreshTokenHash removes the stored refresh token digest,
	// invalidating the user's session.
	ClearRefreshTokenHash(ctx context.Context, userID uuid.UUID) error

	// SwapPasswordHash replaces the password hash only if the stored hash
	// still equals expectedHash. Returns ErrStaleToken when a concurrent
	// change already replaced it.
	SwapPasswordHash(ctx context.Context, userID uuid.UUID, expectedHash, newHash string) error

	// SetResetToken stores the digest of a newly issued reset token along
	// with its expiry. Any previously issued reset token is superseded.
	SetResetToken(ctx context.Context, userID uuid.UUID, digest string, expiresAt time.Time) error

	// ConsumeResetToken atomically sets the new password hash and clears
	// the reset token fields, but only if the stored reset digest still
	// equals expectedDigest and has not expired. Returns ErrStaleToken
	// when the token was already consumed, superseded, or expired.
	ConsumeResetToken(ctx context.Context, userID uuid.UUID, expectedDigest, newPasswordHash string, now time.Time) error
}
