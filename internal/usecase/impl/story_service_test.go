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

func createTestStoryService(t *testing.T) (usecase.StoryUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStoryService(StoryServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return service, txManager
}

func TestStoryService_CreateMythStory_Success(t *testing.T) {
	service, txManager := createTestStoryService(t)

	ctx := context.Background()
	regionID := uuid.New()
	userID := uuid.New()
	input := usecase.MythStoryInput{
		Title:    "La Luz Mala",
		Content:  "A pale light wanders the fields at dusk",
		RegionID: regionID,
		UserID:   userID,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)
			mockStoryRepo := mockRepo.NewMockMythStoryRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockFactory.EXPECT().MythStoryRepo().Return(mockStoryRepo)

			mockRegionRepo.EXPECT().FindByID(ctx, regionID).Return(&entity.Region{ID: regionID}, nil)
			mockStoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MythStory")).
				Run(func(ctx context.Context, story *entity.MythStory) {
					story.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	story, err := service.CreateMythStory(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "La Luz Mala", story.Title)
	assert.Equal(t, userID, story.UserID)
}

func TestStoryService_CreateMythStory_UnknownRegion(t *testing.T) {
	service, txManager := createTestStoryService(t)

	ctx := context.Background()
	regionID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockRegionRepo.EXPECT().FindByID(ctx, regionID).Return(nil, repository.ErrRegionNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrRegionNotFound)

	story, err := service.CreateMythStory(ctx, usecase.MythStoryInput{
		Title:    "Orphan story",
		RegionID: regionID,
		UserID:   uuid.New(),
	})

	assert.Nil(t, story)
	assert.True(t, errors.Is(err, repository.ErrRegionNotFound))
}

func TestStoryService_UpdateMythStory_AuthorAllowed(t *testing.T) {
	service, txManager := createTestStoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()
	existing := &entity.MythStory{ID: storyID, Title: "Old Title", UserID: userID}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStoryRepo := mockRepo.NewMockMythStoryRepository(t)

			mockFactory.EXPECT().MythStoryRepo().Return(mockStoryRepo)
			mockStoryRepo.EXPECT().FindByID(ctx, storyID).Return(existing, nil)
			mockStoryRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.MythStory")).
				Run(func(ctx context.Context, story *entity.MythStory) {
					assert.Equal(t, "New Title", story.Title)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	story, err := service.UpdateMythStory(ctx, entity.Principal{UserID: userID}, storyID, usecase.MythStoryInput{
		Title: "New Title",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Title", story.Title)
}

func TestStoryService_UpdateMythStory_StrangerForbidden(t *testing.T) {
	service, txManager := createTestStoryService(t)

	ctx := context.Background()
	storyID := uuid.New()
	existing := &entity.MythStory{ID: storyID, UserID: uuid.New()}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStoryRepo := mockRepo.NewMockMythStoryRepository(t)

			mockFactory.EXPECT().MythStoryRepo().Return(mockStoryRepo)
			mockStoryRepo.EXPECT().FindByID(ctx, storyID).Return(existing, nil)
			// Update is never reached for a non-author, non-admin caller.

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrForbidden)

	story, err := service.UpdateMythStory(ctx, entity.Principal{UserID: uuid.New()}, storyID, usecase.MythStoryInput{
		Title: "Hijacked",
	})

	assert.Nil(t, story)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStoryService_DeleteMythStory_AdminAllowed(t *testing.T) {
	service, txManager := createTestStoryService(t)

	ctx := context.Background()
	storyID := uuid.New()
	existing := &entity.MythStory{ID: storyID, UserID: uuid.New()}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStoryRepo := mockRepo.NewMockMythStoryRepository(t)

			mockFactory.EXPECT().MythStoryRepo().Return(mockStoryRepo)
			mockStoryRepo.EXPECT().FindByID(ctx, storyID).Return(existing, nil)
			mockStoryRepo.EXPECT().Delete(ctx, storyID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.DeleteMythStory(ctx, entity.Principal{UserID: uuid.New(), IsAdmin: true}, storyID)

	require.NoError(t, err)
}

func TestStoryService_CreateLegend_Success(t *testing.T) {
	service, txManager := createTestStoryService(t)

	ctx := context.Background()
	input := usecase.LegendInput{Name: "El Nahuelito", Description: "The creature of the lake"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLegendRepo := mockRepo.NewMockLegendRepository(t)

			mockFactory.EXPECT().LegendRepo().Return(mockLegendRepo)
			mockLegendRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Legend")).
				Run(func(ctx context.Context, legend *entity.Legend) {
					legend.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	legend, err := service.CreateLegend(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "El Nahuelito", legend.Name)
	assert.NotEqual(t, uuid.Nil, legend.ID)
}
