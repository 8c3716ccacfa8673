package impl

import (
	"context"
	"log/slog"

	"leyenda/config"
	deliverycontext "leyenda/internal/delivery/context"
	"leyenda/internal/domain/entity"
	"leyenda/internal/domain/repository"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// placeService implements the PlaceUsecase interface for hotels and restaurants.
type placeService struct {
	txManager repository.TransactionManager
	radius    radiusLimits
	logger    *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		txManager: params.TxManager,
		radius:    newRadiusLimits(params.Config),
		logger:    params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Hotels ---

func (srv *placeService) CreateHotel(ctx context.Context, input usecase.HotelInput) (*entity.Hotel, error) {
	hotel := &entity.Hotel{
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Rating:    input.Rating,
		Website:   input.Website,
		Phone:     input.Phone,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.HotelRepo().Create(ctx, hotel)
	})
	if err != nil {
		srv.log(ctx).Warn("Hotel creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return hotel, nil
}

func (srv *placeService) GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotel *entity.Hotel
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.HotelRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		hotel = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hotel, nil
}

func (srv *placeService) ListHotels(ctx context.Context, page usecase.PageInput) ([]*entity.Hotel, error) {
	var hotels []*entity.Hotel
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.HotelRepo().FindAll(ctx, toPage(page))
		if err != nil {
			return err
		}
		hotels = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hotels, nil
}

func (srv *placeService) SearchHotels(ctx context.Context, name string, page usecase.PageInput) ([]*entity.Hotel, error) {
	var hotels []*entity.Hotel
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.HotelRepo().SearchByName(ctx, name, toPage(page))
		if err != nil {
			return err
		}
		hotels = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hotels, nil
}

func (srv *placeService) NearbyHotels(ctx context.Context, input usecase.NearbyInput) ([]*entity.Hotel, error) {
	radiusKm := srv.radius.clamp(input.RadiusKm)

	var hotels []*entity.Hotel
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.HotelRepo().FindNearby(ctx, input.Latitude, input.Longitude, radiusKm, toPage(input.Page))
		if err != nil {
			return err
		}
		hotels = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hotels, nil
}

func (srv *placeService) UpdateHotel(ctx context.Context, id uuid.UUID, input usecase.HotelInput) (*entity.Hotel, error) {
	var hotel *entity.Hotel
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hotelRepo := repoFactory.HotelRepo()

		current, err := hotelRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = input.Name
		current.Address = input.Address
		current.Latitude = input.Latitude
		current.Longitude = input.Longitude
		current.Rating = input.Rating
		current.Website = input.Website
		current.Phone = input.Phone

		if err := hotelRepo.Update(ctx, current); err != nil {
			return err
		}
		hotel = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Hotel update failed", slog.Any("hotelID", id), slog.Any("error", err))

		return nil, err
	}

	return hotel, nil
}

func (srv *placeService) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.HotelRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Hotel deletion failed", slog.Any("hotelID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// --- Restaurants ---

func (srv *placeService) CreateRestaurant(ctx context.Context, input usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Rating:    input.Rating,
		Category:  input.Category,
		Website:   input.Website,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RestaurantRepo().Create(ctx, restaurant)
	})
	if err != nil {
		srv.log(ctx).Warn("Restaurant creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return restaurant, nil
}

func (srv *placeService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurant *entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RestaurantRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		restaurant = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (srv *placeService) ListRestaurants(ctx context.Context, page usecase.PageInput) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RestaurantRepo().FindAll(ctx, toPage(page))
		if err != nil {
			return err
		}
		restaurants = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (srv *placeService) SearchRestaurants(ctx context.Context, name string, page usecase.PageInput) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RestaurantRepo().SearchByName(ctx, name, toPage(page))
		if err != nil {
			return err
		}
		restaurants = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (srv *placeService) NearbyRestaurants(ctx context.Context, input usecase.NearbyInput) ([]*entity.Restaurant, error) {
	radiusKm := srv.radius.clamp(input.RadiusKm)

	var restaurants []*entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RestaurantRepo().FindNearby(ctx, input.Latitude, input.Longitude, radiusKm, toPage(input.Page))
		if err != nil {
			return err
		}
		restaurants = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (srv *placeService) UpdateRestaurant(ctx context.Context, id uuid.UUID, input usecase.RestaurantInput) (*entity.Restaurant, error) {
	var restaurant *entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()

		current, err := restaurantRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = input.Name
		current.Address = input.Address
		current.Latitude = input.Latitude
		current.Longitude = input.Longitude
		current.Rating = input.Rating
		current.Category = input.Category
		current.Website = input.Website

		if err := restaurantRepo.Update(ctx, current); err != nil {
			return err
		}
		restaurant = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Restaurant update failed", slog.Any("restaurantID", id), slog.Any("error", err))

		return nil, err
	}

	return restaurant, nil
}

func (srv *placeService) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RestaurantRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Restaurant deletion failed", slog.Any("restaurantID", id), slog.Any("error", err))

		return err
	}

	return nil
}
