package handler

import (
	"log/slog"
	"net/http"

	"leyenda/internal/delivery/http/middleware"
	"leyenda/internal/delivery/http/response"
	"leyenda/internal/domain/entity"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type reviewRequest struct {
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
	TargetType string    `json:"targetType" validate:"required,oneof=hotel restaurant"`
	TargetID   uuid.UUID `json:"targetId" validate:"required"`
}

// Create handles an authenticated user's review submission. The author
// identity comes from the access token, never from the body.
func (h *ReviewHandler) Create(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), usecase.ReviewInput{
		Rating:     req.Rating,
		Comment:    req.Comment,
		TargetType: entity.ReviewTarget(req.TargetType),
		TargetID:   req.TargetID,
		UserID:     principal.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created")
}

// ForHotel returns a hotel's reviews together with its average rating.
func (h *ReviewHandler) ForHotel(c echo.Context) error {
	return h.forTarget(c, entity.ReviewTargetHotel)
}

// ForRestaurant returns a restaurant's reviews together with its average rating.
func (h *ReviewHandler) ForRestaurant(c echo.Context) error {
	return h.forTarget(c, entity.ReviewTargetRestaurant)
}

func (h *ReviewHandler) forTarget(c echo.Context, targetType entity.ReviewTarget) error {
	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.uc.ReviewsForTarget(c.Request().Context(), targetType, id, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews":       summary.Reviews,
		"averageRating": summary.AverageRating,
	}, "")
}

// Mine returns the caller's own reviews.
func (h *ReviewHandler) Mine(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	reviews, err := h.uc.ReviewsByUser(c.Request().Context(), principal.UserID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// Delete lets the author or an admin remove a review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller identity missing")
	}

	id, err := idFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}
