package postgres

import (
	"context"

	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

func (repo *restaurantRepository) FindAll(ctx context.Context, page repository.Page) ([]*entity.Restaurant, error) {
	page = page.Normalize()

	var restaurantMs []model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&restaurantMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return toRestaurantDomains(restaurantMs), nil
}

func (repo *restaurantRepository) SearchByName(ctx context.Context, name string, page repository.Page) ([]*entity.Restaurant, error) {
	page = page.Normalize()

	var restaurantMs []model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&restaurantMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants by name")
	}

	return toRestaurantDomains(restaurantMs), nil
}

func (repo *restaurantRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, page repository.Page) ([]*entity.Restaurant, error) {
	page = page.Normalize()
	latDelta, lonDelta := boundingBox(lat, radiusKm)

	var restaurantMs []model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lon-lonDelta, lon+lonDelta).
		Find(&restaurantMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby restaurants")
	}

	ranked := rankByDistance(toGeoRestaurants(restaurantMs), lat, lon, radiusKm, page)

	out := make([]*entity.Restaurant, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, toRestaurantDomain(g.m))
	}

	return out, nil
}

func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]any{
			"name":      restaurant.Name,
			"address":   restaurant.Address,
			"latitude":  restaurant.Latitude,
			"longitude": restaurant.Longitude,
			"rating":    restaurant.Rating,
			"category":  restaurant.Category,
			"website":   restaurant.Website,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func (repo *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RestaurantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

type geoRestaurant struct {
	m *model.RestaurantModel
}

func (g geoRestaurant) point() orb.Point {
	return orb.Point{g.m.Longitude, g.m.Latitude}
}

func toGeoRestaurants(ms []model.RestaurantModel) []geoRestaurant {
	out := make([]geoRestaurant, 0, len(ms))
	for i := range ms {
		out = append(out, geoRestaurant{m: &ms[i]})
	}

	return out
}

func toRestaurantDomain(m *model.RestaurantModel) *entity.Restaurant {
	return &entity.Restaurant{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Rating:    m.Rating,
		Category:  m.Category,
		Website:   m.Website,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toRestaurantDomains(ms []model.RestaurantModel) []*entity.Restaurant {
	out := make([]*entity.Restaurant, 0, len(ms))
	for i := range ms {
		out = append(out, toRestaurantDomain(&ms[i]))
	}

	return out
}

func fromRestaurantDomain(r *entity.Restaurant) *model.RestaurantModel {
	return &model.RestaurantModel{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Rating:    r.Rating,
		Category:  r.Category,
		Website:   r.Website,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
