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

// mythStoryRepository implements the repository.MythStoryRepository interface using GORM.
type mythStoryRepository struct {
	db *gorm.DB
}

// NewMythStoryRepository is the constructor for mythStoryRepository.
func NewMythStoryRepository(db *gorm.DB) repository.MythStoryRepository {
	return &mythStoryRepository{db: db}
}

func (repo *mythStoryRepository) Create(ctx context.Context, story *entity.MythStory) error {
	storyM := fromMythStoryDomain(story)

	if err := repo.db.WithContext(ctx).Create(storyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid region or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required story information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create myth story")
	}

	story.ID = storyM.ID
	story.CreatedAt = storyM.CreatedAt

	return nil
}

func (repo *mythStoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MythStory, error) {
	var storyM model.MythStoryModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMythStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find myth story by id")
	}

	return toMythStoryDomain(&storyM), nil
}

func (repo *mythStoryRepository) FindAll(ctx context.Context, page repository.Page) ([]*entity.MythStory, error) {
	page = page.Normalize()

	var storyMs []model.MythStoryModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&storyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list myth stories")
	}

	return toMythStoryDomains(storyMs), nil
}

func (repo *mythStoryRepository) FindByRegion(ctx context.Context, regionID uuid.UUID, page repository.Page) ([]*entity.MythStory, error) {
	page = page.Normalize()

	var storyMs []model.MythStoryModel
	err := repo.db.WithContext(ctx).
		Where("region_id = ?", regionID).
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&storyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find myth stories by region")
	}

	return toMythStoryDomains(storyMs), nil
}

func (repo *mythStoryRepository) FindByUser(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.MythStory, error) {
	page = page.Normalize()

	var storyMs []model.MythStoryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&storyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find myth stories by user")
	}

	return toMythStoryDomains(storyMs), nil
}

func (repo *mythStoryRepository) Update(ctx context.Context, story *entity.MythStory) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MythStoryModel{}).
		Where("id = ?", story.ID).
		Updates(map[string]any{
			"title":     story.Title,
			"content":   story.Content,
			"image_url": story.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update myth story")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMythStoryNotFound
	}

	return nil
}

func (repo *mythStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MythStoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete myth story")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMythStoryNotFound
	}

	return nil
}

func toMythStoryDomain(m *model.MythStoryModel) *entity.MythStory {
	return &entity.MythStory{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		RegionID:  m.RegionID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func toMythStoryDomains(ms []model.MythStoryModel) []*entity.MythStory {
	out := make([]*entity.MythStory, 0, len(ms))
	for i := range ms {
		out = append(out, toMythStoryDomain(&ms[i]))
	}

	return out
}

func fromMythStoryDomain(s *entity.MythStory) *model.MythStoryModel {
	return &model.MythStoryModel{
		ID:        s.ID,
		Title:     s.Title,
		Content:   s.Content,
		ImageURL:  s.ImageURL,
		RegionID:  s.RegionID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
	}
}
