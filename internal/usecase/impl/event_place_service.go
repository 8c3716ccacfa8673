package impl

import (
	"context"
	"log/slog"

	"leyenda/config"
	deliverycontext "leyenda/internal/delivery/context"
	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// eventPlaceService implements the EventPlaceUsecase interface.
type eventPlaceService struct {
	txManager repository.TransactionManager
	radius    radiusLimits
	logger    *slog.Logger
}

// EventPlaceServiceParams holds dependencies for eventPlaceService, injected by Fx.
type EventPlaceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEventPlaceService is the constructor for eventPlaceService.
func NewEventPlaceService(params EventPlaceServiceParams) usecase.EventPlaceUsecase {
	return &eventPlaceService{
		txManager: params.TxManager,
		radius:    newRadiusLimits(params.Config),
		logger:    params.Logger,
	}
}

func (srv *eventPlaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateEventPlaceInput enforces the rules shared by create and update: a
// known type, and at most one hosting place (hotel or restaurant, never both).
func validateEventPlaceInput(input usecase.EventPlaceInput) error {
	if !input.Type.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("event place type must be one of festival, ruta, evento, atractivo")
	}
	if input.HotelID != nil && input.RestaurantID != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("an event place cannot reference both a hotel and a restaurant")
	}

	return nil
}

// checkEventPlaceReferences verifies the referenced region, legend and
// optional hosting place exist inside the same transaction as the write.
func checkEventPlaceReferences(ctx context.Context, repoFactory repository.RepositoryFactory, input usecase.EventPlaceInput) error {
	if _, err := repoFactory.RegionRepo().FindByID(ctx, input.RegionID); err != nil {
		return err
	}
	if _, err := repoFactory.LegendRepo().FindByID(ctx, input.LegendID); err != nil {
		return err
	}
	if input.HotelID != nil {
		if _, err := repoFactory.HotelRepo().FindByID(ctx, *input.HotelID); err != nil {
			return err
		}
	}
	if input.RestaurantID != nil {
		if _, err := repoFactory.RestaurantRepo().FindByID(ctx, *input.RestaurantID); err != nil {
			return err
		}
	}

	return nil
}

func (srv *eventPlaceService) CreateEventPlace(ctx context.Context, input usecase.EventPlaceInput) (*entity.EventPlace, error) {
	if err := validateEventPlaceInput(input); err != nil {
		return nil, err
	}

	place := &entity.EventPlace{
		Name:         input.Name,
		Description:  input.Description,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Type:         input.Type,
		RegionID:     input.RegionID,
		LegendID:     input.LegendID,
		HotelID:      input.HotelID,
		RestaurantID: input.RestaurantID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkEventPlaceReferences(ctx, repoFactory, input); err != nil {
			return err
		}

		return repoFactory.EventPlaceRepo().Create(ctx, place)
	})
	if err != nil {
		srv.log(ctx).Warn("Event place creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return place, nil
}

func (srv *eventPlaceService) GetEventPlace(ctx context.Context, id uuid.UUID) (*entity.EventPlace, error) {
	var place *entity.EventPlace
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EventPlaceRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		place = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return place, nil
}

func (srv *eventPlaceService) ListEventPlaces(ctx context.Context, page usecase.PageInput) ([]*entity.EventPlace, error) {
	var places []*entity.EventPlace
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EventPlaceRepo().FindAll(ctx, toPage(page))
		if err != nil {
			return err
		}
		places = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return places, nil
}

func (srv *eventPlaceService) EventPlacesByType(ctx context.Context, placeType entity.EventPlaceType, page usecase.PageInput) ([]*entity.EventPlace, error) {
	if !placeType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event place type must be one of festival, ruta, evento, atractivo")
	}

	var places []*entity.EventPlace
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EventPlaceRepo().FindByType(ctx, placeType, toPage(page))
		if err != nil {
			return err
		}
		places = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return places, nil
}

func (srv *eventPlaceService) EventPlacesByRegion(ctx context.Context, regionID uuid.UUID, page usecase.PageInput) ([]*entity.EventPlace, error) {
	var places []*entity.EventPlace
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EventPlaceRepo().FindByRegion(ctx, regionID, toPage(page))
		if err != nil {
			return err
		}
		places = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return places, nil
}

func (srv *eventPlaceService) NearbyEventPlaces(ctx context.Context, input usecase.NearbyInput) ([]*entity.EventPlace, error) {
	radiusKm := srv.radius.clamp(input.RadiusKm)

	var places []*entity.EventPlace
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EventPlaceRepo().FindNearby(ctx, input.Latitude, input.Longitude, radiusKm, toPage(input.Page))
		if err != nil {
			return err
		}
		places = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return places, nil
}

func (srv *eventPlaceService) UpdateEventPlace(ctx context.Context, id uuid.UUID, input usecase.EventPlaceInput) (*entity.EventPlace, error) {
	if err := validateEventPlaceInput(input); err != nil {
		return nil, err
	}

	var place *entity.EventPlace
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.EventPlaceRepo()

		current, err := placeRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := checkEventPlaceReferences(ctx, repoFactory, input); err != nil {
			return err
		}

		current.Name = input.Name
		current.Description = input.Description
		current.Latitude = input.Latitude
		current.Longitude = input.Longitude
		current.Type = input.Type
		current.RegionID = input.RegionID
		current.LegendID = input.LegendID
		current.HotelID = input.HotelID
		current.RestaurantID = input.RestaurantID

		if err := placeRepo.Update(ctx, current); err != nil {
			return err
		}
		place = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Event place update failed", slog.Any("eventPlaceID", id), slog.Any("error", err))

		return nil, err
	}

	return place, nil
}

func (srv *eventPlaceService) DeleteEventPlace(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.EventPlaceRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Event place deletion failed", slog.Any("eventPlaceID", id), slog.Any("error", err))

		return err
	}

	return nil
}
