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

const (
	defaultNearbyRadiusKm = 10.0
	maxNearbyRadiusKm     = 100.0
)

// regionService implements the RegionUsecase interface.
type regionService struct {
	txManager repository.TransactionManager
	radius    radiusLimits
	logger    *slog.Logger
}

// radiusLimits clamps nearby queries to a sane search window.
type radiusLimits struct {
	defaultKm float64
	maxKm     float64
}

func newRadiusLimits(cfg *config.Config) radiusLimits {
	limits := radiusLimits{defaultKm: defaultNearbyRadiusKm, maxKm: maxNearbyRadiusKm}
	if cfg != nil && cfg.Catalog != nil {
		if cfg.Catalog.DefaultNearbyRadiusKm > 0 {
			limits.defaultKm = cfg.Catalog.DefaultNearbyRadiusKm
		}
		if cfg.Catalog.MaxNearbyRadiusKm > 0 {
			limits.maxKm = cfg.Catalog.MaxNearbyRadiusKm
		}
	}

	return limits
}

// clamp normalizes a requested radius into the configured window.
func (r radiusLimits) clamp(radiusKm float64) float64 {
	if radiusKm <= 0 {
		return r.defaultKm
	}
	if radiusKm > r.maxKm {
		return r.maxKm
	}

	return radiusKm
}

func toPage(p usecase.PageInput) repository.Page {
	return repository.Page{Offset: p.Offset, Limit: p.Limit}.Normalize()
}

// RegionServiceParams holds dependencies for regionService, injected by Fx.
type RegionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRegionService is the constructor for regionService.
func NewRegionService(params RegionServiceParams) usecase.RegionUsecase {
	return &regionService{
		txManager: params.TxManager,
		radius:    newRadiusLimits(params.Config),
		logger:    params.Logger,
	}
}

func (srv *regionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *regionService) CreateRegion(ctx context.Context, input usecase.RegionInput) (*entity.Region, error) {
	region := &entity.Region{
		Name:        input.Name,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		LegendID:    input.LegendID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RegionRepo().Create(ctx, region)
	})
	if err != nil {
		srv.log(ctx).Warn("Region creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return region, nil
}

func (srv *regionService) GetRegion(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var region *entity.Region
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RegionRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		region = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return region, nil
}

func (srv *regionService) ListRegions(ctx context.Context, page usecase.PageInput) ([]*entity.Region, error) {
	var regions []*entity.Region
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RegionRepo().FindAll(ctx, toPage(page))
		if err != nil {
			return err
		}
		regions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}

func (srv *regionService) SearchRegions(ctx context.Context, name string, page usecase.PageInput) ([]*entity.Region, error) {
	var regions []*entity.Region
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RegionRepo().SearchByName(ctx, name, toPage(page))
		if err != nil {
			return err
		}
		regions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}

func (srv *regionService) NearbyRegions(ctx context.Context, input usecase.NearbyInput) ([]*entity.Region, error) {
	radiusKm := srv.radius.clamp(input.RadiusKm)

	var regions []*entity.Region
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RegionRepo().FindNearby(ctx, input.Latitude, input.Longitude, radiusKm, toPage(input.Page))
		if err != nil {
			return err
		}
		regions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}

func (srv *regionService) RegionsByLegend(ctx context.Context, legendID uuid.UUID, page usecase.PageInput) ([]*entity.Region, error) {
	var regions []*entity.Region
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RegionRepo().FindByLegend(ctx, legendID, toPage(page))
		if err != nil {
			return err
		}
		regions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}

func (srv *regionService) UpdateRegion(ctx context.Context, id uuid.UUID, input usecase.RegionInput) (*entity.Region, error) {
	var region *entity.Region
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		regionRepo := repoFactory.RegionRepo()

		current, err := regionRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = input.Name
		current.Description = input.Description
		current.Latitude = input.Latitude
		current.Longitude = input.Longitude
		current.LegendID = input.LegendID

		if err := regionRepo.Update(ctx, current); err != nil {
			return err
		}
		region = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Region update failed", slog.Any("regionID", id), slog.Any("error", err))

		return nil, err
	}

	return region, nil
}

func (srv *regionService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RegionRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Region deletion failed", slog.Any("regionID", id), slog.Any("error", err))

		return err
	}

	return nil
}
