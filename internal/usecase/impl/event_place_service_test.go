package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"leyenda/config"
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

func createTestEventPlaceService(t *testing.T, cfg *config.Config) (usecase.EventPlaceUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEventPlaceService(EventPlaceServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    logger,
	})

	return service, txManager
}

func TestEventPlaceService_CreateEventPlace_Success(t *testing.T) {
	service, txManager := createTestEventPlaceService(t, nil)

	ctx := context.Background()
	regionID := uuid.New()
	legendID := uuid.New()
	input := usecase.EventPlaceInput{
		Name:        "Fiesta del Pehuén",
		Description: "A harvest festival held under the araucaria trees",
		Latitude:    -38.95,
		Longitude:   -70.9,
		Type:        entity.EventPlaceFestival,
		RegionID:    regionID,
		LegendID:    legendID,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)
			mockLegendRepo := mockRepo.NewMockLegendRepository(t)
			mockPlaceRepo := mockRepo.NewMockEventPlaceRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockFactory.EXPECT().LegendRepo().Return(mockLegendRepo)
			mockFactory.EXPECT().EventPlaceRepo().Return(mockPlaceRepo)

			mockRegionRepo.EXPECT().FindByID(ctx, regionID).Return(&entity.Region{ID: regionID}, nil)
			mockLegendRepo.EXPECT().FindByID(ctx, legendID).Return(&entity.Legend{ID: legendID}, nil)
			mockPlaceRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.EventPlace")).
				Run(func(ctx context.Context, place *entity.EventPlace) {
					place.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	place, err := service.CreateEventPlace(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Fiesta del Pehuén", place.Name)
	assert.Equal(t, entity.EventPlaceFestival, place.Type)
	assert.NotEqual(t, uuid.Nil, place.ID)
}

func TestEventPlaceService_CreateEventPlace_UnknownType(t *testing.T) {
	service, _ := createTestEventPlaceService(t, nil)

	// No transaction is opened for input rejected up front.
	place, err := service.CreateEventPlace(context.Background(), usecase.EventPlaceInput{
		Name:        "Mystery spot",
		Description: "A place of an unrecognized kind",
		Type:        entity.EventPlaceType("carnaval"),
		RegionID:    uuid.New(),
		LegendID:    uuid.New(),
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEventPlaceService_CreateEventPlace_HotelAndRestaurantExclusive(t *testing.T) {
	service, _ := createTestEventPlaceService(t, nil)

	hotelID := uuid.New()
	restaurantID := uuid.New()

	place, err := service.CreateEventPlace(context.Background(), usecase.EventPlaceInput{
		Name:         "Doubly hosted",
		Description:  "An event claiming two hosting places at once",
		Type:         entity.EventPlaceEvent,
		RegionID:     uuid.New(),
		LegendID:     uuid.New(),
		HotelID:      &hotelID,
		RestaurantID: &restaurantID,
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEventPlaceService_CreateEventPlace_UnknownRegion(t *testing.T) {
	service, txManager := createTestEventPlaceService(t, nil)

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

	place, err := service.CreateEventPlace(ctx, usecase.EventPlaceInput{
		Name:        "Orphan festival",
		Description: "References a region nobody registered",
		Type:        entity.EventPlaceFestival,
		RegionID:    regionID,
		LegendID:    uuid.New(),
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, repository.ErrRegionNotFound))
}

func TestEventPlaceService_CreateEventPlace_ChecksHotelReference(t *testing.T) {
	service, txManager := createTestEventPlaceService(t, nil)

	ctx := context.Background()
	regionID := uuid.New()
	legendID := uuid.New()
	hotelID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRegionRepo := mockRepo.NewMockRegionRepository(t)
			mockLegendRepo := mockRepo.NewMockLegendRepository(t)
			mockHotelRepo := mockRepo.NewMockHotelRepository(t)

			mockFactory.EXPECT().RegionRepo().Return(mockRegionRepo)
			mockFactory.EXPECT().LegendRepo().Return(mockLegendRepo)
			mockFactory.EXPECT().HotelRepo().Return(mockHotelRepo)

			mockRegionRepo.EXPECT().FindByID(ctx, regionID).Return(&entity.Region{ID: regionID}, nil)
			mockLegendRepo.EXPECT().FindByID(ctx, legendID).Return(&entity.Legend{ID: legendID}, nil)
			mockHotelRepo.EXPECT().FindByID(ctx, hotelID).Return(nil, repository.ErrHotelNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrHotelNotFound)

	place, err := service.CreateEventPlace(ctx, usecase.EventPlaceInput{
		Name:        "Gala at the lake hotel",
		Description: "Hosted by a hotel that does not exist",
		Type:        entity.EventPlaceEvent,
		RegionID:    regionID,
		LegendID:    legendID,
		HotelID:     &hotelID,
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, repository.ErrHotelNotFound))
}

func TestEventPlaceService_EventPlacesByType_InvalidType(t *testing.T) {
	service, _ := createTestEventPlaceService(t, nil)

	places, err := service.EventPlacesByType(context.Background(), entity.EventPlaceType("parque"), usecase.PageInput{})

	assert.Nil(t, places)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEventPlaceService_EventPlacesByType_Success(t *testing.T) {
	service, txManager := createTestEventPlaceService(t, nil)

	ctx := context.Background()
	expected := []*entity.EventPlace{{ID: uuid.New(), Name: "Ruta de la Leyenda", Type: entity.EventPlaceRoute}}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlaceRepo := mockRepo.NewMockEventPlaceRepository(t)

			mockFactory.EXPECT().EventPlaceRepo().Return(mockPlaceRepo)
			mockPlaceRepo.EXPECT().
				FindByType(ctx, entity.EventPlaceRoute, repository.Page{Offset: 0, Limit: repository.MaxPageSize}).
				Return(expected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	places, err := service.EventPlacesByType(ctx, entity.EventPlaceRoute, usecase.PageInput{})

	require.NoError(t, err)
	assert.Equal(t, expected, places)
}

func TestEventPlaceService_NearbyEventPlaces_RadiusClampedToMax(t *testing.T) {
	cfg := &config.Config{Catalog: &config.CatalogConfig{MaxNearbyRadiusKm: 40}}
	service, txManager := createTestEventPlaceService(t, cfg)

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlaceRepo := mockRepo.NewMockEventPlaceRepository(t)

			mockFactory.EXPECT().EventPlaceRepo().Return(mockPlaceRepo)
			mockPlaceRepo.EXPECT().
				FindNearby(ctx, -38.95, -68.06, 40.0, repository.Page{Offset: 0, Limit: 20}).
				Return([]*entity.EventPlace{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	places, err := service.NearbyEventPlaces(ctx, usecase.NearbyInput{
		Latitude:  -38.95,
		Longitude: -68.06,
		RadiusKm:  400,
		Page:      usecase.PageInput{Limit: 20},
	})

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestEventPlaceService_UpdateEventPlace_NotFound(t *testing.T) {
	service, txManager := createTestEventPlaceService(t, nil)

	ctx := context.Background()
	placeID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlaceRepo := mockRepo.NewMockEventPlaceRepository(t)

			mockFactory.EXPECT().EventPlaceRepo().Return(mockPlaceRepo)
			mockPlaceRepo.EXPECT().FindByID(ctx, placeID).Return(nil, repository.ErrEventPlaceNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrEventPlaceNotFound)

	place, err := service.UpdateEventPlace(ctx, placeID, usecase.EventPlaceInput{
		Name:        "Renamed festival",
		Description: "An update aimed at a missing record",
		Type:        entity.EventPlaceFestival,
		RegionID:    uuid.New(),
		LegendID:    uuid.New(),
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, repository.ErrEventPlaceNotFound))
}

func TestEventPlaceService_DeleteEventPlace_Success(t *testing.T) {
	service, txManager := createTestEventPlaceService(t, nil)

	ctx := context.Background()
	placeID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlaceRepo := mockRepo.NewMockEventPlaceRepository(t)

			mockFactory.EXPECT().EventPlaceRepo().Return(mockPlaceRepo)
			mockPlaceRepo.EXPECT().Delete(ctx, placeID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.DeleteEventPlace(ctx, placeID)

	require.NoError(t, err)
}
