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

// regionRepository implements the repository.RegionRepository interface using GORM.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

func (repo *regionRepository) Create(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid legend reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required region information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create region")
	}

	region.ID = regionM.ID
	region.CreatedAt = regionM.CreatedAt
	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

func (repo *regionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var regionM model.RegionModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&regionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by id")
	}

	return toRegionDomain(&regionM), nil
}

func (repo *regionRepository) FindAll(ctx context.Context, page repository.Page) ([]*entity.Region, error) {
	page = page.Normalize()

	var regionMs []model.RegionModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&regionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return toRegionDomains(regionMs), nil
}

func (repo *regionRepository) SearchByName(ctx context.Context, name string, page repository.Page) ([]*entity.Region, error) {
	page = page.Normalize()

	var regionMs []model.RegionModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&regionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search regions by name")
	}

	return toRegionDomains(regionMs), nil
}

// FindNearby pre-filters candidates with a bounding box in SQL, then ranks the
// survivors by precise Haversine distance.
func (repo *regionRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, page repository.Page) ([]*entity.Region, error) {
	page = page.Normalize()
	latDelta, lonDelta := boundingBox(lat, radiusKm)

	var regionMs []model.RegionModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lon-lonDelta, lon+lonDelta).
		Find(&regionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby regions")
	}

	ranked := rankByDistance(toGeoRegions(regionMs), lat, lon, radiusKm, page)

	out := make([]*entity.Region, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, toRegionDomain(g.m))
	}

	return out, nil
}

func (repo *regionRepository) FindByLegend(ctx context.Context, legendID uuid.UUID, page repository.Page) ([]*entity.Region, error) {
	page = page.Normalize()

	var regionMs []model.RegionModel
	err := repo.db.WithContext(ctx).
		Where("legend_id = ?", legendID).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&regionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find regions by legend")
	}

	return toRegionDomains(regionMs), nil
}

func (repo *regionRepository) Update(ctx context.Context, region *entity.Region) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegionModel{}).
		Where("id = ?", region.ID).
		Updates(map[string]any{
			"name":        region.Name,
			"description": region.Description,
			"latitude":    region.Latitude,
			"longitude":   region.Longitude,
			"legend_id":   region.LegendID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid legend reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update region")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

func (repo *regionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RegionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete region")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// geoRegion adapts a region row to the distance ranking helper.
type geoRegion struct {
	m *model.RegionModel
}

func (g geoRegion) point() orb.Point {
	return orb.Point{g.m.Longitude, g.m.Latitude}
}

func toGeoRegions(ms []model.RegionModel) []geoRegion {
	out := make([]geoRegion, 0, len(ms))
	for i := range ms {
		out = append(out, geoRegion{m: &ms[i]})
	}

	return out
}

func toRegionDomain(m *model.RegionModel) *entity.Region {
	return &entity.Region{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		LegendID:    m.LegendID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRegionDomains(ms []model.RegionModel) []*entity.Region {
	out := make([]*entity.Region, 0, len(ms))
	for i := range ms {
		out = append(out, toRegionDomain(&ms[i]))
	}

	return out
}

func fromRegionDomain(r *entity.Region) *model.RegionModel {
	return &model.RegionModel{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		LegendID:    r.LegendID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
