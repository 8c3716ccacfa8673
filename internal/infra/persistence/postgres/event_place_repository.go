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

// eventPlaceRepository implements the repository.EventPlaceRepository interface using GORM.
type eventPlaceRepository struct {
	db *gorm.DB
}

// NewEventPlaceRepository is the constructor for eventPlaceRepository.
func NewEventPlaceRepository(db *gorm.DB) repository.EventPlaceRepository {
	return &eventPlaceRepository{db: db}
}

func (repo *eventPlaceRepository) Create(ctx context.Context, place *entity.EventPlace) error {
	placeM := fromEventPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("referenced region, legend, hotel or restaurant does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event place information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

func (repo *eventPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventPlace, error) {
	var placeM model.EventPlaceModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&placeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find event place by id")
	}

	return toEventPlaceDomain(&placeM), nil
}

func (repo *eventPlaceRepository) FindAll(ctx context.Context, page repository.Page) ([]*entity.EventPlace, error) {
	page = page.Normalize()

	var placeMs []model.EventPlaceModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&placeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event places")
	}

	return toEventPlaceDomains(placeMs), nil
}

func (repo *eventPlaceRepository) FindByType(ctx context.Context, placeType entity.EventPlaceType, page repository.Page) ([]*entity.EventPlace, error) {
	page = page.Normalize()

	var placeMs []model.EventPlaceModel
	err := repo.db.WithContext(ctx).
		Where("type = ?", string(placeType)).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&placeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event places by type")
	}

	return toEventPlaceDomains(placeMs), nil
}

func (repo *eventPlaceRepository) FindByRegion(ctx context.Context, regionID uuid.UUID, page repository.Page) ([]*entity.EventPlace, error) {
	page = page.Normalize()

	var placeMs []model.EventPlaceModel
	err := repo.db.WithContext(ctx).
		Where("region_id = ?", regionID).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&placeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event places by region")
	}

	return toEventPlaceDomains(placeMs), nil
}

func (repo *eventPlaceRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, page repository.Page) ([]*entity.EventPlace, error) {
	page = page.Normalize()
	latDelta, lonDelta := boundingBox(lat, radiusKm)

	var placeMs []model.EventPlaceModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lon-lonDelta, lon+lonDelta).
		Find(&placeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby event places")
	}

	ranked := rankByDistance(toGeoEventPlaces(placeMs), lat, lon, radiusKm, page)

	out := make([]*entity.EventPlace, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, toEventPlaceDomain(g.m))
	}

	return out, nil
}

func (repo *eventPlaceRepository) Update(ctx context.Context, place *entity.EventPlace) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventPlaceModel{}).
		Where("id = ?", place.ID).
		Updates(map[string]any{
			"name":          place.Name,
			"description":   place.Description,
			"latitude":      place.Latitude,
			"longitude":     place.Longitude,
			"type":          string(place.Type),
			"region_id":     place.RegionID,
			"legend_id":     place.LegendID,
			"hotel_id":      place.HotelID,
			"restaurant_id": place.RestaurantID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("referenced region, legend, hotel or restaurant does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventPlaceNotFound
	}

	return nil
}

func (repo *eventPlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventPlaceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventPlaceNotFound
	}

	return nil
}

type geoEventPlace struct {
	m *model.EventPlaceModel
}

func (g geoEventPlace) point() orb.Point {
	return orb.Point{g.m.Longitude, g.m.Latitude}
}

func toGeoEventPlaces(ms []model.EventPlaceModel) []geoEventPlace {
	out := make([]geoEventPlace, 0, len(ms))
	for i := range ms {
		out = append(out, geoEventPlace{m: &ms[i]})
	}

	return out
}

func toEventPlaceDomain(m *model.EventPlaceModel) *entity.EventPlace {
	return &entity.EventPlace{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Type:         entity.EventPlaceType(m.Type),
		RegionID:     m.RegionID,
		LegendID:     m.LegendID,
		HotelID:      m.HotelID,
		RestaurantID: m.RestaurantID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toEventPlaceDomains(ms []model.EventPlaceModel) []*entity.EventPlace {
	out := make([]*entity.EventPlace, 0, len(ms))
	for i := range ms {
		out = append(out, toEventPlaceDomain(&ms[i]))
	}

	return out
}

func fromEventPlaceDomain(p *entity.EventPlace) *model.EventPlaceModel {
	return &model.EventPlaceModel{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Type:         string(p.Type),
		RegionID:     p.RegionID,
		LegendID:     p.LegendID,
		HotelID:      p.HotelID,
		RestaurantID: p.RestaurantID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
