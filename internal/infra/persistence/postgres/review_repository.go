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

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) FindByTarget(ctx context.Context, targetType entity.ReviewTarget, targetID uuid.UUID, page repository.Page) ([]*entity.Review, error) {
	page = page.Normalize()

	var reviewMs []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", string(targetType), targetID).
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by target")
	}

	return toReviewDomains(reviewMs), nil
}

func (repo *reviewRepository) FindByUser(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.Review, error) {
	page = page.Normalize()

	var reviewMs []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by user")
	}

	return toReviewDomains(reviewMs), nil
}

// AverageRating computes the mean rating for a target in SQL. COALESCE keeps
// the query returning a row even when no reviews exist.
func (repo *reviewRepository) AverageRating(ctx context.Context, targetType entity.ReviewTarget, targetID uuid.UUID) (float64, error) {
	var avg float64
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("target_type = ? AND target_id = ?", string(targetType), targetID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return avg, nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:         m.ID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		TargetType: entity.ReviewTarget(m.TargetType),
		TargetID:   m.TargetID,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewDomains(ms []model.ReviewModel) []*entity.Review {
	out := make([]*entity.Review, 0, len(ms))
	for i := range ms {
		out = append(out, toReviewDomain(&ms[i]))
	}

	return out
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:         r.ID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		TargetType: string(r.TargetType),
		TargetID:   r.TargetID,
		UserID:     r.UserID,
		CreatedAt:  r.CreatedAt,
	}
}
