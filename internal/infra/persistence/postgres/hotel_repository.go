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

// hotelRepository implements the repository.HotelRepository interface using GORM.
type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository is the constructor for hotelRepository.
func NewHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

func (repo *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotelM := fromHotelDomain(hotel)

	if err := repo.db.WithContext(ctx).Create(hotelM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required hotel information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hotel")
	}

	hotel.ID = hotelM.ID
	hotel.CreatedAt = hotelM.CreatedAt
	hotel.UpdatedAt = hotelM.UpdatedAt

	return nil
}

func (repo *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&hotelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by id")
	}

	return toHotelDomain(&hotelM), nil
}

func (repo *hotelRepository) FindAll(ctx context.Context, page repository.Page) ([]*entity.Hotel, error) {
	page = page.Normalize()

	var hotelMs []model.HotelModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&hotelMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	return toHotelDomains(hotelMs), nil
}

func (repo *hotelRepository) SearchByName(ctx context.Context, name string, page repository.Page) ([]*entity.Hotel, error) {
	page = page.Normalize()

	var hotelMs []model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&hotelMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search hotels by name")
	}

	return toHotelDomains(hotelMs), nil
}

func (repo *hotelRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, page repository.Page) ([]*entity.Hotel, error) {
	page = page.Normalize()
	latDelta, lonDelta := boundingBox(lat, radiusKm)

	var hotelMs []model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lon-lonDelta, lon+lonDelta).
		Find(&hotelMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby hotels")
	}

	ranked := rankByDistance(toGeoHotels(hotelMs), lat, lon, radiusKm, page)

	out := make([]*entity.Hotel, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, toHotelDomain(g.m))
	}

	return out, nil
}

func (repo *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HotelModel{}).
		Where("id = ?", hotel.ID).
		Updates(map[string]any{
			"name":      hotel.Name,
			"address":   hotel.Address,
			"latitude":  hotel.Latitude,
			"longitude": hotel.Longitude,
			"rating":    hotel.Rating,
			"website":   hotel.Website,
			"phone":     hotel.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hotel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHotelNotFound
	}

	return nil
}

func (repo *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HotelModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete hotel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHotelNotFound
	}

	return nil
}

type geoHotel struct {
	m *model.HotelModel
}

func (g geoHotel) point() orb.Point {
	return orb.Point{g.m.Longitude, g.m.Latitude}
}

func toGeoHotels(ms []model.HotelModel) []geoHotel {
	out := make([]geoHotel, 0, len(ms))
	for i := range ms {
		out = append(out, geoHotel{m: &ms[i]})
	}

	return out
}

func toHotelDomain(m *model.HotelModel) *entity.Hotel {
	return &entity.Hotel{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Rating:    m.Rating,
		Website:   m.Website,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toHotelDomains(ms []model.HotelModel) []*entity.Hotel {
	out := make([]*entity.Hotel, 0, len(ms))
	for i := range ms {
		out = append(out, toHotelDomain(&ms[i]))
	}

	return out
}

func fromHotelDomain(h *entity.Hotel) *model.HotelModel {
	return &model.HotelModel{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		Latitude:  h.Latitude,
		Longitude: h.Longitude,
		Rating:    h.Rating,
		Website:   h.Website,
		Phone:     h.Phone,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
