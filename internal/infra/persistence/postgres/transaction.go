// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"leyenda/config"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"
	"leyenda/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db          *gorm.DB
	execTimeout time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

func (f *gormRepositoryFactory) RegionRepo() repository.RegionRepository {
	return NewRegionRepository(f.tx)
}

func (f *gormRepositoryFactory) HotelRepo() repository.HotelRepository {
	return NewHotelRepository(f.tx)
}

func (f *gormRepositoryFactory) RestaurantRepo() repository.RestaurantRepository {
	return NewRestaurantRepository(f.tx)
}

func (f *gormRepositoryFactory) LegendRepo() repository.LegendRepository {
	return NewLegendRepository(f.tx)
}

func (f *gormRepositoryFactory) MythStoryRepo() repository.MythStoryRepository {
	return NewMythStoryRepository(f.tx)
}

func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *gormRepositoryFactory) EventPlaceRepo() repository.EventPlaceRepository {
	return NewEventPlaceRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{db: db, execTimeout: storageExecTimeout(cfg)}
}

func storageExecTimeout(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Storage != nil && cfg.Storage.ExecTimeout > 0 {
		return cfg.Storage.ExecTimeout
	}

	return 5 * time.Second
}

// Execute runs the given function within a single database transaction. The
// whole transaction is bounded by the configured storage timeout; a stalled
// connection surfaces as a transient storage error instead of hanging.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	ctx, cancel := context.WithTimeout(ctx, tm.execTimeout)
	defer cancel()

	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		if deadlineExceeded(ctx, tx.Error) {
			return domainerrors.NewDatabaseExecuteError(tx.Error, "storage operation timed out")
		}

		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// If a panic occurs within the callback, the transaction must still be
	// rolled back before the panic continues up the stack.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error; the rollback failure is secondary.
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		if deadlineExceeded(ctx, err) {
			return domainerrors.NewDatabaseExecuteError(err, "storage operation timed out")
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		if deadlineExceeded(ctx, err) {
			return domainerrors.NewDatabaseExecuteError(err, "storage operation timed out")
		}

		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// deadlineExceeded reports whether err, or the bounding context itself, hit
// the storage deadline. Business errors returned before the deadline fires
// must pass through untouched, so the error is inspected first.
func deadlineExceeded(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
