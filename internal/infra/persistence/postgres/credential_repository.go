package postgres

import (
	"context"
	"time"

	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface using GORM.
//
// All token mutations are single conditional UPDATE statements. When two
// requests race on the same row, the database serializes them and the loser
// observes zero affected rows, which surfaces as repository.ErrStaleToken.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new credential. The unique index on username closes the
// duplicate-registration race at the database.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credM.ID
	credential.CreatedAt = credM.CreatedAt
	credential.UpdatedAt = credM.UpdatedAt

	return nil
}

// FindByUsername retrieves a credential by its unique username.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credM model.CredentialModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&credM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(&credM), nil
}

// FindByUserID retrieves the credential belonging to a user.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credM model.CredentialModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&credM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return toCredentialDomain(&credM), nil
}

// SetRefreshTokenHash unconditionally stores a new refresh token digest.
func (repo *credentialRepository) SetRefreshTokenHash(ctx context.Context, userID uuid.UUID, digest string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Update("refresh_token_hash", digest)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store refresh token hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// RotateRefreshTokenHash swaps the refresh token digest in one conditional
// UPDATE. Zero affected rows means the stored digest moved underneath us.
func (repo *credentialRepository) RotateRefreshTokenHash(ctx context.Context, userID uuid.UUID, expectedDigest, newDigest string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ? AND refresh_token_hash = ?", userID, expectedDigest).
		Update("refresh_token_hash", newDigest)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate refresh token hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleToken
	}

	return nil
}

// ClearRefreshTokenHash removes any stored refresh token digest.
func (repo *credentialRepository) ClearRefreshTokenHash(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Update("refresh_token_hash", "")
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear refresh token hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// SwapPasswordHash replaces the password hash only when the stored hash still
// equals expectedHash, so concurrent password changes cannot clobber each other.
func (repo *credentialRepository) SwapPasswordHash(ctx context.Context, userID uuid.UUID, expectedHash, newHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ? AND password_hash = ?", userID, expectedHash).
		Update("password_hash", newHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to swap password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleToken
	}

	return nil
}

// SetResetToken stores a new reset token digest and expiry, superseding any
// previously issued reset token.
func (repo *credentialRepository) SetResetToken(ctx context.Context, userID uuid.UUID, digest string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"reset_token_hash":       digest,
			"reset_token_expires_at": expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// ConsumeResetToken sets the new password and clears the reset pair in one
// conditional UPDATE. The expiry check rides in the WHERE clause, so an
// expired token loses exactly like a consumed one.
func (repo *credentialRepository) ConsumeResetToken(ctx context.Context, userID uuid.UUID, expectedDigest, newPasswordHash string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ? AND reset_token_hash = ? AND reset_token_expires_at > ?", userID, expectedDigest, now).
		Updates(map[string]any{
			"password_hash":          newPasswordHash,
			"reset_token_hash":       "",
			"reset_token_expires_at": nil,
			"refresh_token_hash":     "",
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleToken
	}

	return nil
}

// toCredentialDomain maps the persistence model to a pure domain entity.
func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:                  m.ID,
		UserID:              m.UserID,
		Username:            m.Username,
		PasswordHash:        m.PasswordHash,
		IsAdmin:             m.IsAdmin,
		RefreshTokenHash:    m.RefreshTokenHash,
		ResetTokenHash:      m.ResetTokenHash,
		ResetTokenExpiresAt: m.ResetTokenExpiresAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// fromCredentialDomain maps a domain entity to the persistence model.
func fromCredentialDomain(c *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:                  c.ID,
		UserID:              c.UserID,
		Username:            c.Username,
		PasswordHash:        c.PasswordHash,
		IsAdmin:             c.IsAdmin,
		RefreshTokenHash:    c.RefreshTokenHash,
		ResetTokenHash:      c.ResetTokenHash,
		ResetTokenExpiresAt: c.ResetTokenExpiresAt,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
