// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"leyenda/config"
	deliverycontext "leyenda/internal/delivery/context"
	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/domain/service"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = 30 * time.Minute

// authService implements the AuthUsecase interface. The service itself is
// stateless; all account state lives in the credential row.
type authService struct {
	txManager     repository.TransactionManager
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTTL := defaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTTL = params.Config.Auth.ResetTokenTTL
	}

	return &authService{
		txManager:     params.TxManager,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		resetTokenTTL: resetTTL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user profile and its credential in one transaction.
// Uniqueness of email and username is enforced by database constraints inside
// that transaction, so two concurrent registrations of the same identity
// cannot both commit.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user := &entity.User{
			Email:     input.Email,
			Name:      input.Name,
			LastName:  input.LastName,
			Address:   input.Address,
			Birthdate: input.Birthdate,
			Phone:     input.Phone,
			TaxID:     input.TaxID,
		}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		credential := &entity.Credential{
			UserID:       user.ID,
			Username:     input.Username,
			PasswordHash: passwordHash,
			IsAdmin:      input.IsAdmin,
		}
		if err := repoFactory.CredentialRepo().Create(ctx, credential); err != nil {
			return err
		}

		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the username/password pair and issues a token pair. A missing
// username and a wrong password surface as the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	var output *usecase.TokenPairOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credential, err := repoFactory.CredentialRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to load credential")
		}

		if !srv.hasher.Check(input.Password, credential.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, credential.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		pair, err := srv.issueTokens(ctx, repoFactory, credential.UserID, user.Email, credential.IsAdmin)
		if err != nil {
			return err
		}
		output = pair

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Refresh rotates the caller's refresh token. The stored digest is swapped in
// a single compare-and-swap update, so of two concurrent presentations of the
// same token at most one succeeds; the loser sees InvalidRefresh.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	presentedDigest := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.TokenPairOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		credential, err := credentialRepo.FindByUserID(ctx, input.Principal.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrCredentialNotFound
			}

			return errors.Wrap(err, "failed to load credential")
		}
		if credential.RefreshTokenHash == "" {
			return domainerrors.ErrInvalidRefreshToken
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
			credential.UserID, input.Principal.Email, credential.IsAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newDigest := srv.tokenService.HashToken(refreshToken)
		err = credentialRepo.RotateRefreshTokenHash(ctx, credential.UserID, presentedDigest, newDigest)
		if err != nil {
			if errors.Is(err, repository.ErrStaleToken) {
				// Mismatched or already rotated by a concurrent request.
				return domainerrors.ErrInvalidRefreshToken
			}

			return err
		}

		output = &usecase.TokenPairOutput{AccessToken: accessToken, RefreshToken: refreshToken}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("userID", input.Principal.UserID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout clears the stored refresh token digest so the outstanding refresh
// token can never be presented again. Logging out twice is harmless.
func (srv *authService) Logout(ctx context.Context, principal entity.Principal) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.CredentialRepo().ClearRefreshTokenHash(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrCredentialNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Logout failed", slog.Any("userID", principal.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Logged out", slog.Any("userID", principal.UserID))

	return nil
}

// ChangePassword replaces the password after verifying the current one. The
// swap is conditional on the verified hash, so a concurrent change on the
// same account cannot be silently overwritten.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		credential, err := credentialRepo.FindByUserID(ctx, input.Principal.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrCredentialNotFound
			}

			return errors.Wrap(err, "failed to load credential")
		}

		if !srv.hasher.Check(input.CurrentPassword, credential.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		err = credentialRepo.SwapPasswordHash(ctx, credential.UserID, credential.PasswordHash, newHash)
		if err != nil {
			if errors.Is(err, repository.ErrStaleToken) {
				return domainerrors.ErrInvalidCredentials
			}

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", input.Principal.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.Principal.UserID))

	return nil
}

// RequestPasswordReset issues a fresh random reset token, stores its digest
// with the expiry, and returns the raw value exactly once. A newer request
// supersedes any pending token.
func (srv *authService) RequestPasswordReset(ctx context.Context, input usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	rawToken := uuid.NewString()
	digest := srv.tokenService.HashToken(rawToken)
	expiresAt := time.Now().Add(srv.resetTokenTTL)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.CredentialRepo().SetResetToken(ctx, input.Principal.UserID, digest, expiresAt)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrCredentialNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reset token issued", slog.Any("userID", input.Principal.UserID))

	return &usecase.RequestResetOutput{
		ResetToken:       rawToken,
		ExpiresInMinutes: int(srv.resetTokenTTL.Minutes()),
	}, nil
}

// ResetPassword consumes a reset token. Confirmation is checked before any
// storage access; expiry is checked inside the consuming update itself, so a
// token past its window loses exactly like a consumed one.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return domainerrors.ErrInvalidResetToken
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	presentedDigest := srv.tokenService.HashToken(input.ResetToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		credential, err := credentialRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrInvalidResetToken
			}

			return errors.Wrap(err, "failed to load credential")
		}
		if !credential.HasPendingReset(time.Now()) {
			return domainerrors.ErrInvalidResetToken
		}

		err = credentialRepo.ConsumeResetToken(ctx, userID, presentedDigest, newHash, time.Now())
		if err != nil {
			if errors.Is(err, repository.ErrStaleToken) {
				return domainerrors.ErrInvalidResetToken
			}

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

// issueTokens generates a token pair and stores the refresh token's digest.
func (srv *authService) issueTokens(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, email string, isAdmin bool) (*usecase.TokenPairOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, email, isAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	digest := srv.tokenService.HashToken(refreshToken)
	if err := repoFactory.CredentialRepo().SetRefreshTokenHash(ctx, userID, digest); err != nil {
		return nil, err
	}

	return &usecase.TokenPairOutput{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
