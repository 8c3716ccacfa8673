package repository

import (
	"context"
	"errors"

	"leyenda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when no review matches the lookup.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence operations for place reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByTarget returns reviews for a hotel or restaurant, newest first.
	FindByTarget(ctx context.Context, targetType entity.ReviewTarget, targetID uuid.UUID, page Page) ([]*entity.Review, error)

	// FindByUser returns reviews written by the given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.Review, error)

	// AverageRating computes the mean rating for a target. Returns 0 with
	// no error when the target has no reviews.
	AverageRating(ctx context.Context, targetType entity.ReviewTarget, targetID uuid.UUID) (float64, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
