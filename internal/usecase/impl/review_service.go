package impl

import (
	"context"
	"log/slog"

	deliverycontext "leyenda/internal/delivery/context"
	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview validates the target kind and existence before inserting.
func (srv *reviewService) CreateReview(ctx context.Context, input usecase.ReviewInput) (*entity.Review, error) {
	if !input.TargetType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown review target type")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	review := &entity.Review{
		Rating:     input.Rating,
		Comment:    input.Comment,
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		UserID:     input.UserID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch input.TargetType {
		case entity.ReviewTargetHotel:
			if _, err := repoFactory.HotelRepo().FindByID(ctx, input.TargetID); err != nil {
				return err
			}
		case entity.ReviewTargetRestaurant:
			if _, err := repoFactory.RestaurantRepo().FindByID(ctx, input.TargetID); err != nil {
				return err
			}
		}

		return repoFactory.ReviewRepo().Create(ctx, review)
	})
	if err != nil {
		srv.log(ctx).Warn("Review creation failed", slog.Any("targetID", input.TargetID), slog.Any("error", err))

		return nil, err
	}

	return review, nil
}

// ReviewsForTarget returns a page of reviews together with the target's
// average rating.
func (srv *reviewService) ReviewsForTarget(ctx context.Context, targetType entity.ReviewTarget, targetID uuid.UUID, page usecase.PageInput) (*usecase.ReviewSummary, error) {
	if !targetType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown review target type")
	}

	var summary *usecase.ReviewSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		reviews, err := reviewRepo.FindByTarget(ctx, targetType, targetID, toPage(page))
		if err != nil {
			return err
		}

		average, err := reviewRepo.AverageRating(ctx, targetType, targetID)
		if err != nil {
			return err
		}

		summary = &usecase.ReviewSummary{Reviews: reviews, AverageRating: average}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (srv *reviewService) ReviewsByUser(ctx context.Context, userID uuid.UUID, page usecase.PageInput) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindByUser(ctx, userID, toPage(page))
		if err != nil {
			return err
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// DeleteReview lets the author remove their own review; admins may remove any.
func (srv *reviewService) DeleteReview(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		current, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.UserID != principal.UserID && !principal.IsAdmin {
			return domainerrors.ErrForbidden
		}

		return reviewRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Review deletion failed", slog.Any("reviewID", id), slog.Any("error", err))

		return err
	}

	return nil
}
