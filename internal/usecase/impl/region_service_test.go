package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"leyenda/config"
	"leyenda/internal/domain/entity"
	"leyenda/internal/domain/repository"
	mockRepo "leyenda/internal/mocks/repository"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegionService(t *testing.T, cfg *config.Config) (usecase.RegionUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRegionService(RegionServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    logger,
	})

	return service, txManager
}

func TestRegionService_CreateRegion_Success(t *testing.T) {
	service, txManager := createTestRegionService(t, nil)

	ctx := context.Background()
	input := usecase.RegionInput{
		Name:        "Valle Encantado",
		Description: "A valley of whispering stones",
		Latitude:    -38.95,
		Longitude:   -68.06,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockRegionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Region")).
				Run(func(ctx context.Context, region *entity.Region) {
					region.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	region, err := service.CreateRegion(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, region.Name)
	assert.NotEqual(t, uuid.Nil, region.ID)
}

func TestRegionService_GetRegion_NotFound(t *testing.T) {
	service, txManager := createTestRegionService(t, nil)

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

	region, err := service.GetRegion(ctx, regionID)

	assert.Nil(t, region)
	assert.True(t, errors.Is(err, repository.ErrRegionNotFound))
}

func TestRegionService_NearbyRegions_DefaultRadius(t *testing.T) {
	service, txManager := createTestRegionService(t, nil)

	ctx := context.Background()
	expected := []*entity.Region{{ID: uuid.New(), Name: "Cerro Azul"}}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			// A zero radius falls back to the default window.
			mockRegionRepo.EXPECT().
				FindNearby(ctx, -38.95, -68.06, defaultNearbyRadiusKm, repository.Page{Offset: 0, Limit: repository.MaxPageSize}).
				Return(expected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	regions, err := service.NearbyRegions(ctx, usecase.NearbyInput{
		Latitude:  -38.95,
		Longitude: -68.06,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, regions)
}

func TestRegionService_NearbyRegions_RadiusClampedToMax(t *testing.T) {
	cfg := &config.Config{Catalog: &config.CatalogConfig{MaxNearbyRadiusKm: 50}}
	service, txManager := createTestRegionService(t, cfg)

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockRegionRepo.EXPECT().
				FindNearby(ctx, -38.95, -68.06, 50.0, repository.Page{Offset: 0, Limit: 20}).
				Return([]*entity.Region{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	regions, err := service.NearbyRegions(ctx, usecase.NearbyInput{
		Latitude:  -38.95,
		Longitude: -68.06,
		RadiusKm:  500,
		Page:      usecase.PageInput{Limit: 20},
	})

	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestRegionService_UpdateRegion_Success(t *testing.T) {
	service, txManager := createTestRegionService(t, nil)

	ctx := context.Background()
	regionID := uuid.New()
	legendID := uuid.New()
	existing := &entity.Region{ID: regionID, Name: "Old Name"}
	input := usecase.RegionInput{
		Name:      "New Name",
		Latitude:  -39.0,
		Longitude: -68.1,
		LegendID:  &legendID,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockRegionRepo.EXPECT().FindByID(ctx, regionID).Return(existing, nil)
			mockRegionRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Region")).
				Run(func(ctx context.Context, region *entity.Region) {
					assert.Equal(t, "New Name", region.Name)
					assert.Equal(t, &legendID, region.LegendID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	region, err := service.UpdateRegion(ctx, regionID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", region.Name)
}

func TestRegionService_DeleteRegion_NotFound(t *testing.T) {
	service, txManager := createTestRegionService(t, nil)

	ctx := context.Background()
	regionID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockRegionRepo.EXPECT().Delete(ctx, regionID).Return(repository.ErrRegionNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrRegionNotFound)

	err := service.DeleteRegion(ctx, regionID)

	assert.True(t, errors.Is(err, repository.ErrRegionNotFound))
}
