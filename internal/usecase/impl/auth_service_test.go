package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leyenda/config"
	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/domain/service"
	mockRepo "leyenda/internal/mocks/repository"
	mockSvc "leyenda/internal/mocks/service"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T, cfg *config.Config) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:     "ana@example.com",
		Username:  "ana",
		Password:  "password123",
		Name:      "Ana",
		LastName:  "García",
		Birthdate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockCredRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, credential *entity.Credential) {
					assert.Equal(t, "ana", credential.Username)
					assert.Equal(t, "hashed-password", credential.PasswordHash)
					assert.NotEqual(t, uuid.Nil, credential.UserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "newcomer",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrEmailTaken)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEmailTaken)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "fresh@example.com",
		Username: "taken",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)
			mockCredRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				Return(domainerrors.ErrUsernameTaken)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUsernameTaken)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	credential := &entity.Credential{
		ID:           uuid.New(),
		UserID:       userID,
		Username:     "ana",
		PasswordHash: "stored-hash",
	}
	user := &entity.User{ID: userID, Email: "ana@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)

			mockCredRepo.EXPECT().FindByUsername(ctx, "ana").Return(credential, nil)
			fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID, "ana@example.com", false).
				Return("access-token", "refresh-token", nil)
			fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-digest")
			mockCredRepo.EXPECT().SetRefreshTokenHash(ctx, userID, "refresh-digest").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().
				FindByUsername(ctx, "ghost").
				Return(nil, repository.ErrCredentialNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	credential := &entity.Credential{
		UserID:       uuid.New(),
		Username:     "ana",
		PasswordHash: "stored-hash",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUsername(ctx, "ana").Return(credential, nil)
			fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ana", Password: "wrong"})

	assert.Nil(t, output)
	// Wrong password and unknown username must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID, Email: "ana@example.com"}
	credential := &entity.Credential{
		UserID:           userID,
		Username:         "ana",
		RefreshTokenHash: "digest-old",
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Email: "ana@example.com", Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("digest-old")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID, "ana@example.com", false).
				Return("new-access", "new-refresh", nil)
			fx.tokenService.EXPECT().HashToken("new-refresh").Return("digest-new")
			mockCredRepo.EXPECT().
				RotateRefreshTokenHash(ctx, userID, "digest-old", "digest-new").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{Principal: principal, RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.NotEqual(t, "old-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New()}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{Principal: principal, RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_Refresh_ReusedTokenLosesRace(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID, Email: "ana@example.com"}
	// The stored digest was already rotated by a concurrent refresh.
	credential := &entity.Credential{
		UserID:           userID,
		Username:         "ana",
		RefreshTokenHash: "digest-rotated",
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("digest-old")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID, "ana@example.com", false).
				Return("new-access", "new-refresh", nil)
			fx.tokenService.EXPECT().HashToken("new-refresh").Return("digest-new")
			mockCredRepo.EXPECT().
				RotateRefreshTokenHash(ctx, userID, "digest-old", "digest-new").
				Return(repository.ErrStaleToken)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidRefreshToken)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{Principal: principal, RefreshToken: "old-refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_Refresh_NoOutstandingToken(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID}
	credential := &entity.Credential{UserID: userID, Username: "ana", RefreshTokenHash: ""}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("digest-old")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidRefreshToken)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{Principal: principal, RefreshToken: "old-refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID}
	credential := &entity.Credential{UserID: userID, Username: "ana", PasswordHash: "old-hash"}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)
			fx.hasher.EXPECT().Check("current-password", "old-hash").Return(true)
			mockCredRepo.EXPECT().
				SwapPasswordHash(ctx, userID, "old-hash", "new-hash").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		Principal:       principal,
		CurrentPassword: "current-password",
		NewPassword:     "new-password",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID}
	credential := &entity.Credential{UserID: userID, Username: "ana", PasswordHash: "old-hash"}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)
			fx.hasher.EXPECT().Check("wrong", "old-hash").Return(false)
			// SwapPasswordHash must not be called; the stored hash stays put.

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		Principal:       principal,
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RequestPasswordReset_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID}

	fx.tokenService.EXPECT().HashToken(mock.AnythingOfType("string")).Return("reset-digest")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().
				SetResetToken(ctx, userID, "reset-digest", mock.AnythingOfType("time.Time")).
				Run(func(ctx context.Context, userID uuid.UUID, digest string, expiresAt time.Time) {
					remaining := time.Until(expiresAt)
					assert.InDelta(t, defaultResetTokenTTL.Minutes(), remaining.Minutes(), 1)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RequestPasswordReset(ctx, usecase.RequestResetInput{Principal: principal})

	require.NoError(t, err)
	assert.NotEmpty(t, output.ResetToken)
	assert.Equal(t, 30, output.ExpiresInMinutes)
	// The raw token is handed out, never the stored digest.
	assert.NotEqual(t, "reset-digest", output.ResetToken)
}

func TestAuthService_RequestPasswordReset_ConfiguredWindow(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{ResetTokenTTL: 45 * time.Minute}}
	fx := createTestAuthService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken(mock.AnythingOfType("string")).Return("reset-digest")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().
				SetResetToken(ctx, userID, "reset-digest", mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RequestPasswordReset(ctx, usecase.RequestResetInput{
		Principal: entity.Principal{UserID: userID},
	})

	require.NoError(t, err)
	assert.Equal(t, 45, output.ExpiresInMinutes)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)
	credential := &entity.Credential{
		UserID:              userID,
		Username:            "ana",
		PasswordHash:        "old-hash",
		ResetTokenHash:      "reset-digest",
		ResetTokenExpiresAt: &expiresAt,
	}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("raw-reset-token").Return("reset-digest")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)
			mockCredRepo.EXPECT().
				ConsumeResetToken(ctx, userID, "reset-digest", "new-hash", mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		UserID:          userID.String(),
		ResetToken:      "raw-reset-token",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_ConfirmationMismatch(t *testing.T) {
	fx := createTestAuthService(t, nil)

	// No hashing, no transaction: the mismatch is rejected before any
	// storage access.
	err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		UserID:          uuid.NewString(),
		ResetToken:      "raw-reset-token",
		NewPassword:     "new-password",
		ConfirmPassword: "different",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_ResetPassword_MalformedUserID(t *testing.T) {
	fx := createTestAuthService(t, nil)

	err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		UserID:          "not-a-uuid",
		ResetToken:      "raw-reset-token",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(-time.Minute)
	credential := &entity.Credential{
		UserID:              userID,
		Username:            "ana",
		PasswordHash:        "old-hash",
		ResetTokenHash:      "reset-digest",
		ResetTokenExpiresAt: &expiresAt,
	}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("raw-reset-token").Return("reset-digest")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)
			// ConsumeResetToken must not be called for a lapsed window.

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidResetToken)

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		UserID:          userID.String(),
		ResetToken:      "raw-reset-token",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestAuthService_ResetPassword_AlreadyConsumed(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)
	credential := &entity.Credential{
		UserID:              userID,
		Username:            "ana",
		PasswordHash:        "old-hash",
		ResetTokenHash:      "newer-digest",
		ResetTokenExpiresAt: &expiresAt,
	}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("raw-reset-token").Return("stale-digest")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByUserID(ctx, userID).Return(credential, nil)
			mockCredRepo.EXPECT().
				ConsumeResetToken(ctx, userID, "stale-digest", "new-hash", mock.AnythingOfType("time.Time")).
				Return(repository.ErrStaleToken)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidResetToken)

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		UserID:          userID.String(),
		ResetToken:      "raw-reset-token",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().ClearRefreshTokenHash(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, entity.Principal{UserID: userID})

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownCredential(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().ClearRefreshTokenHash(ctx, userID).Return(repository.ErrCredentialNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCredentialNotFound)

	err := fx.service.Logout(ctx, entity.Principal{UserID: userID})

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialNotFound))
}
