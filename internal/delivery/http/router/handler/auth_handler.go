// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"leyenda/internal/delivery/http/middleware"
	"leyenda/internal/delivery/http/response"
	"leyenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and token lifecycle handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Email     string    `json:"email" validate:"required,email"`
	Username  string    `json:"username" validate:"required,min=3,max=32"`
	Password  string    `json:"password" validate:"required,min=8"`
	Name      string    `json:"name" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Address   string    `json:"address"`
	Birthdate time.Time `json:"birthdate"`
	Phone     string    `json:"phone"`
	TaxID     string    `json:"taxId"`
	IsAdmin   bool      `json:"isAdmin"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address,omitempty"`
	Birthdate time.Time `json:"birthdate"`
	Phone     string    `json:"phone,omitempty"`
	TaxID     string    `json:"taxId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Name:      req.Name,
		LastName:  req.LastName,
		Address:   req.Address,
		Birthdate: req.Birthdate,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	user := output.User

	return response.Success(c, http.StatusCreated, userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		LastName:  user.LastName,
		Address:   user.Address,
		Birthdate: user.Birthdate,
		Phone:     user.Phone,
		TaxID:     user.TaxID,
		CreatedAt: user.CreatedAt,
	}, "Account registered successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login handles the username/password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh handles the token rotation request. The caller's identity comes
// from the verified access token; the body carries only the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		Principal:    principal,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Token refreshed successfully")
}

// Logout discards the caller's outstanding refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	if err := h.uc.Logout(c.Request().Context(), principal); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword handles the authenticated password change request.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Principal:       principal,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

type resetTokenResponse struct {
	ResetToken       string `json:"resetToken"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}

// RequestResetToken issues a time-boxed password reset token for the caller.
// The raw token appears in this response and nowhere else.
func (h *AuthHandler) RequestResetToken(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	output, err := h.uc.RequestPasswordReset(c.Request().Context(), usecase.RequestResetInput{
		Principal: principal,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resetTokenResponse{
		ResetToken:       output.ResetToken,
		ExpiresInMinutes: output.ExpiresInMinutes,
	}, "Reset token issued")
}

type resetPasswordRequest struct {
	UserID          string `json:"userId" validate:"required"`
	ResetToken      string `json:"resetToken" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ResetPassword consumes a previously issued reset token. This is a public
// flow: the user id travels with the token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		UserID:          req.UserID,
		ResetToken:      req.ResetToken,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
