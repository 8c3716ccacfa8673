package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	mockRepo "leyenda/internal/mocks/repository"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return service, txManager
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	service, txManager := createTestReviewService(t)

	ctx := context.Background()
	hotelID := uuid.New()
	userID := uuid.New()
	input := usecase.ReviewInput{
		Rating:     4,
		Comment:    "Quiet rooms, great view of the lake",
		TargetType: entity.ReviewTargetHotel,
		TargetID:   hotelID,
		UserID:     userID,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHotelRepo := mockRepo.NewMockHotelRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().HotelRepo().Return(mockHotelRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockHotelRepo.EXPECT().FindByID(ctx, hotelID).Return(&entity.Hotel{ID: hotelID}, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					review.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := service.CreateReview(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, userID, review.UserID)
}

func TestReviewService_CreateReview_UnknownTargetType(t *testing.T) {
	service, _ := createTestReviewService(t)

	review, err := service.CreateReview(context.Background(), usecase.ReviewInput{
		Rating:     4,
		TargetType: entity.ReviewTarget("museum"),
		TargetID:   uuid.New(),
		UserID:     uuid.New(),
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	service, _ := createTestReviewService(t)

	review, err := service.CreateReview(context.Background(), usecase.ReviewInput{
		Rating:     6,
		TargetType: entity.ReviewTargetHotel,
		TargetID:   uuid.New(),
		UserID:     uuid.New(),
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_CreateReview_TargetMissing(t *testing.T) {
	service, txManager := createTestReviewService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)

			mockFactory.EXPECT().RestaurantRepo().Return(mockRestaurantRepo)
			mockRestaurantRepo.EXPECT().
				FindByID(ctx, restaurantID).
				Return(nil, repository.ErrRestaurantNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrRestaurantNotFound)

	review, err := service.CreateReview(ctx, usecase.ReviewInput{
		Rating:     3,
		TargetType: entity.ReviewTargetRestaurant,
		TargetID:   restaurantID,
		UserID:     uuid.New(),
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, repository.ErrRestaurantNotFound))
}

func TestReviewService_ReviewsForTarget_WithAverage(t *testing.T) {
	service, txManager := createTestReviewService(t)

	ctx := context.Background()
	hotelID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), Rating: 5, TargetType: entity.ReviewTargetHotel, TargetID: hotelID},
		{ID: uuid.New(), Rating: 4, TargetType: entity.ReviewTargetHotel, TargetID: hotelID},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().
				FindByTarget(ctx, entity.ReviewTargetHotel, hotelID, repository.Page{Offset: 0, Limit: repository.MaxPageSize}).
				Return(reviews, nil)
			mockReviewRepo.EXPECT().
				AverageRating(ctx, entity.ReviewTargetHotel, hotelID).
				Return(4.5, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	summary, err := service.ReviewsForTarget(ctx, entity.ReviewTargetHotel, hotelID, usecase.PageInput{})

	require.NoError(t, err)
	assert.Len(t, summary.Reviews, 2)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
}

func TestReviewService_DeleteReview_AuthorAllowed(t *testing.T) {
	service, txManager := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, UserID: userID}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)
			mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.DeleteReview(ctx, entity.Principal{UserID: userID}, reviewID)

	require.NoError(t, err)
}

func TestReviewService_DeleteReview_StrangerForbidden(t *testing.T) {
	service, txManager := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, UserID: uuid.New()}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)
			// Delete is never reached for a non-author, non-admin caller.

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrForbidden)

	err := service.DeleteReview(ctx, entity.Principal{UserID: uuid.New()}, reviewID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_DeleteReview_AdminAllowed(t *testing.T) {
	service, txManager := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, UserID: uuid.New()}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)
			mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.DeleteReview(ctx, entity.Principal{UserID: uuid.New(), IsAdmin: true}, reviewID)

	require.NoError(t, err)
}
