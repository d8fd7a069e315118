package service

import (
	"context"
	"errors"
	"log"

	"github.com/alligatorO15/fin-dashboard/internal/cache"
	"github.com/alligatorO15/fin-dashboard/internal/config"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryCycle       = errors.New("category parent would create a cycle")
	ErrInvalidCategoryName = errors.New("category name is required")

	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidAmount          = errors.New("amount must be non-negative")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidDescription     = errors.New("description is required")
	ErrInvalidDate            = errors.New("transaction date is required")

	ErrInvalidPeriod = errors.New("invalid period")
)

type Services struct {
	Auth        AuthService
	Category    CategoryService
	Transaction TransactionService
	Analytics   AnalyticsService
}

func NewServices(repos *repository.Repositories, snapshots cache.SnapshotCache, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.RefreshToken, cfg),
		Category:    NewCategoryService(repos.TxManager, repos.Category, repos.Transaction, snapshots),
		Transaction: NewTransactionService(repos.Transaction, repos.Category, snapshots),
		Analytics:   NewAnalyticsService(repos.Transaction, repos.Category, repos.User, snapshots, cfg),
	}
}

// invalidate поднимает версию данных пользователя; ошибка кэша не ломает запись
func invalidate(ctx context.Context, snapshots cache.SnapshotCache, userID uuid.UUID) {
	if err := snapshots.BumpVersion(ctx, userID); err != nil {
		log.Printf("analytics cache: %v", err)
	}
}
