package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/analytics"
	"github.com/alligatorO15/fin-dashboard/internal/cache"
	"github.com/alligatorO15/fin-dashboard/internal/config"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/google/uuid"
)

//go:generate mockgen -source=analytics_service.go -destination=analytics_service_mock.go -package=service

type AnalyticsService interface {
	GetSnapshot(ctx context.Context, userID uuid.UUID, sel models.PeriodSelector) (*models.AnalyticsSnapshot, error)
	// текущий месяц против прошлого, от селектора не зависит
	GetCategoryTrends(ctx context.Context, userID uuid.UUID) ([]models.CategoryTrend, error)
	// последние 30 дней, от селектора не зависит
	GetRecurring(ctx context.Context, userID uuid.UUID) ([]models.RecurringPattern, error)
	GetAnomalies(ctx context.Context, userID uuid.UUID, sel models.PeriodSelector) ([]models.Anomaly, error)
	// прогноз всегда по текущему месяцу
	GetPredictions(ctx context.Context, userID uuid.UUID) (*models.Prediction, error)
}

type analyticsService struct {
	transactionRepo repository.TransactionRepository
	categoryRepo    repository.CategoryRepository
	userRepo        repository.UserRepository
	snapshots       cache.SnapshotCache
	config          *config.Config
	now             func() time.Time
}

func NewAnalyticsService(transactionRepo repository.TransactionRepository, categoryRepo repository.CategoryRepository, userRepo repository.UserRepository, snapshots cache.SnapshotCache, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
		snapshots:       snapshots,
		config:          cfg,
		now:             time.Now,
	}
}

func (s *analyticsService) GetSnapshot(ctx context.Context, userID uuid.UUID, sel models.PeriodSelector) (*models.AnalyticsSnapshot, error) {
	if !sel.Period.Valid() {
		return nil, ErrInvalidPeriod
	}

	loc, err := s.location(ctx, userID)
	if err != nil {
		return nil, err
	}
	engine := analytics.NewEngine(loc, s.now)

	// кэш только ускоряет: при любой его ошибке считаем напрямую
	key := ""
	if version, err := s.snapshots.Version(ctx, userID); err != nil {
		log.Printf("analytics cache: %v", err)
	} else {
		key = cache.SnapshotKey(userID, version, sel, engine.Now())
		if cached, err := s.snapshots.Get(ctx, key); err != nil {
			log.Printf("analytics cache: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	transactions, err := s.transactionRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	snapshot := engine.Snapshot(transactions, categories, sel)

	if key != "" {
		if err := s.snapshots.Set(ctx, key, snapshot); err != nil {
			log.Printf("analytics cache: %v", err)
		}
	}

	return snapshot, nil
}

func (s *analyticsService) GetCategoryTrends(ctx context.Context, userID uuid.UUID) ([]models.CategoryTrend, error) {
	snapshot, err := s.GetSnapshot(ctx, userID, models.PeriodSelector{Period: models.PeriodMonth})
	if err != nil {
		return nil, err
	}
	return snapshot.CategoryTrends, nil
}

func (s *analyticsService) GetRecurring(ctx context.Context, userID uuid.UUID) ([]models.RecurringPattern, error) {
	snapshot, err := s.GetSnapshot(ctx, userID, models.PeriodSelector{Period: models.PeriodMonth})
	if err != nil {
		return nil, err
	}
	return snapshot.RecurringPatterns, nil
}

func (s *analyticsService) GetAnomalies(ctx context.Context, userID uuid.UUID, sel models.PeriodSelector) ([]models.Anomaly, error) {
	snapshot, err := s.GetSnapshot(ctx, userID, sel)
	if err != nil {
		return nil, err
	}
	return snapshot.Anomalies, nil
}

func (s *analyticsService) GetPredictions(ctx context.Context, userID uuid.UUID) (*models.Prediction, error) {
	snapshot, err := s.GetSnapshot(ctx, userID, models.PeriodSelector{Period: models.PeriodMonth})
	if err != nil {
		return nil, err
	}
	return snapshot.Predictions, nil
}

// location таймзона пользователя, если задана и известна, иначе из конфига
func (s *analyticsService) location(ctx context.Context, userID uuid.UUID) (*time.Location, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.config.Location, nil
		}
		return nil, err
	}

	if user.Timezone != "" {
		if loc, err := time.LoadLocation(user.Timezone); err == nil {
			return loc, nil
		}
	}
	return s.config.Location, nil
}
