package impl

import (
	"context"
	"log/slog"

	deliverycontext "leyenda/internal/delivery/context"
	"leyenda/internal/domain/entity"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// storyService implements the StoryUsecase interface for legends and myth stories.
type storyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// StoryServiceParams holds dependencies for storyService, injected by Fx.
type StoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewStoryService is the constructor for storyService.
func NewStoryService(params StoryServiceParams) usecase.StoryUsecase {
	return &storyService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *storyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Legends ---

func (srv *storyService) CreateLegend(ctx context.Context, input usecase.LegendInput) (*entity.Legend, error) {
	legend := &entity.Legend{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LegendRepo().Create(ctx, legend)
	})
	if err != nil {
		srv.log(ctx).Warn("Legend creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return legend, nil
}

func (srv *storyService) GetLegend(ctx context.Context, id uuid.UUID) (*entity.Legend, error) {
	var legend *entity.Legend
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.LegendRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		legend = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return legend, nil
}

func (srv *storyService) ListLegends(ctx context.Context, page usecase.PageInput) ([]*entity.Legend, error) {
	var legends []*entity.Legend
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.LegendRepo().FindAll(ctx, toPage(page))
		if err != nil {
			return err
		}
		legends = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return legends, nil
}

func (srv *storyService) SearchLegends(ctx context.Context, name string, page usecase.PageInput) ([]*entity.Legend, error) {
	var legends []*entity.Legend
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.LegendRepo().SearchByName(ctx, name, toPage(page))
		if err != nil {
			return err
		}
		legends = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return legends, nil
}

func (srv *storyService) UpdateLegend(ctx context.Context, id uuid.UUID, input usecase.LegendInput) (*entity.Legend, error) {
	var legend *entity.Legend
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		legendRepo := repoFactory.LegendRepo()

		current, err := legendRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = input.Name
		current.Description = input.Description
		current.ImageURL = input.ImageURL

		if err := legendRepo.Update(ctx, current); err != nil {
			return err
		}
		legend = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Legend update failed", slog.Any("legendID", id), slog.Any("error", err))

		return nil, err
	}

	return legend, nil
}

func (srv *storyService) DeleteLegend(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LegendRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Legend deletion failed", slog.Any("legendID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// --- Myth stories ---

func (srv *storyService) CreateMythStory(ctx context.Context, input usecase.MythStoryInput) (*entity.MythStory, error) {
	story := &entity.MythStory{
		Title:    input.Title,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		RegionID: input.RegionID,
		UserID:   input.UserID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The region must exist; a dangling region id is a client error,
		// not a storage fault.
		if _, err := repoFactory.RegionRepo().FindByID(ctx, input.RegionID); err != nil {
			return err
		}

		return repoFactory.MythStoryRepo().Create(ctx, story)
	})
	if err != nil {
		srv.log(ctx).Warn("Myth story creation failed", slog.Any("regionID", input.RegionID), slog.Any("error", err))

		return nil, err
	}

	return story, nil
}

func (srv *storyService) GetMythStory(ctx context.Context, id uuid.UUID) (*entity.MythStory, error) {
	var story *entity.MythStory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MythStoryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		story = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return story, nil
}

func (srv *storyService) ListMythStories(ctx context.Context, page usecase.PageInput) ([]*entity.MythStory, error) {
	var stories []*entity.MythStory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MythStoryRepo().FindAll(ctx, toPage(page))
		if err != nil {
			return err
		}
		stories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stories, nil
}

func (srv *storyService) MythStoriesByRegion(ctx context.Context, regionID uuid.UUID, page usecase.PageInput) ([]*entity.MythStory, error) {
	var stories []*entity.MythStory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MythStoryRepo().FindByRegion(ctx, regionID, toPage(page))
		if err != nil {
			return err
		}
		stories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stories, nil
}

func (srv *storyService) MythStoriesByUser(ctx context.Context, userID uuid.UUID, page usecase.PageInput) ([]*entity.MythStory, error) {
	var stories []*entity.MythStory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MythStoryRepo().FindByUser(ctx, userID, toPage(page))
		if err != nil {
			return err
		}
		stories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stories, nil
}

// UpdateMythStory lets the author edit their own story; admins may edit any.
func (srv *storyService) UpdateMythStory(ctx context.Context, principal entity.Principal, id uuid.UUID, input usecase.MythStoryInput) (*entity.MythStory, error) {
	var story *entity.MythStory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storyRepo := repoFactory.MythStoryRepo()

		current, err := storyRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.UserID != principal.UserID && !principal.IsAdmin {
			return domainerrors.ErrForbidden
		}

		current.Title = input.Title
		current.Content = input.Content
		current.ImageURL = input.ImageURL

		if err := storyRepo.Update(ctx, current); err != nil {
			return err
		}
		story = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Myth story update failed", slog.Any("storyID", id), slog.Any("error", err))

		return nil, err
	}

	return story, nil
}

// DeleteMythStory lets the author remove their own story; admins may remove any.
func (srv *storyService) DeleteMythStory(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storyRepo := repoFactory.MythStoryRepo()

		current, err := storyRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.UserID != principal.UserID && !principal.IsAdmin {
			return domainerrors.ErrForbidden
		}

		return storyRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Myth story deletion failed", slog.Any("storyID", id), slog.Any("error", err))

		return err
	}

	return nil
}
