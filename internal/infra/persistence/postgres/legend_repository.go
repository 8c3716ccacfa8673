package postgres

import (
	"context"

	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// legendRepository implements the repository.LegendRepository interface using GORM.
type legendRepository struct {
	db *gorm.DB
}

// NewLegendRepository is the constructor for legendRepository.
func NewLegendRepository(db *gorm.DB) repository.LegendRepository {
	return &legendRepository{db: db}
}

func (repo *legendRepository) Create(ctx context.Context, legend *entity.Legend) error {
	legendM := fromLegendDomain(legend)

	if err := repo.db.WithContext(ctx).Create(legendM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required legend information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create legend")
	}

	legend.ID = legendM.ID
	legend.CreatedAt = legendM.CreatedAt
	legend.UpdatedAt = legendM.UpdatedAt

	return nil
}

func (repo *legendRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Legend, error) {
	var legendM model.LegendModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&legendM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLegendNotFound
		}

		return nil, errors.Wrap(err, "failed to find legend by id")
	}

	return toLegendDomain(&legendM), nil
}

func (repo *legendRepository) FindAll(ctx context.Context, page repository.Page) ([]*entity.Legend, error) {
	page = page.Normalize()

	var legendMs []model.LegendModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&legendMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list legends")
	}

	return toLegendDomains(legendMs), nil
}

func (repo *legendRepository) SearchByName(ctx context.Context, name string, page repository.Page) ([]*entity.Legend, error) {
	page = page.Normalize()

	var legendMs []model.LegendModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&legendMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search legends by name")
	}

	return toLegendDomains(legendMs), nil
}

func (repo *legendRepository) Update(ctx context.Context, legend *entity.Legend) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LegendModel{}).
		Where("id = ?", legend.ID).
		Updates(map[string]any{
			"name":        legend.Name,
			"description": legend.Description,
			"image_url":   legend.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update legend")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLegendNotFound
	}

	return nil
}

func (repo *legendRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LegendModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete legend")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLegendNotFound
	}

	return nil
}

func toLegendDomain(m *model.LegendModel) *entity.Legend {
	return &entity.Legend{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toLegendDomains(ms []model.LegendModel) []*entity.Legend {
	out := make([]*entity.Legend, 0, len(ms))
	for i := range ms {
		out = append(out, toLegendDomain(&ms[i]))
	}

	return out
}

func fromLegendDomain(l *entity.Legend) *model.LegendModel {
	return &model.LegendModel{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		ImageURL:    l.ImageURL,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
