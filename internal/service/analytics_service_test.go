package service

import (
	"context"
	"testing"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/cache"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type analyticsMocks struct {
	transactions *repository.MockTransactionRepository
	categories   *repository.MockCategoryRepository
	users        *repository.MockUserRepository
	snapshots    *cache.MockSnapshotCache
}

var analyticsNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

func newAnalyticsService(t *testing.T) (AnalyticsService, analyticsMocks) {
	ctrl := gomock.NewController(t)
	m := analyticsMocks{
		transactions: repository.NewMockTransactionRepository(ctrl),
		categories:   repository.NewMockCategoryRepository(ctrl),
		users:        repository.NewMockUserRepository(ctrl),
		snapshots:    cache.NewMockSnapshotCache(ctrl),
	}
	svc := NewAnalyticsService(m.transactions, m.categories, m.users, m.snapshots, testConfig()).(*analyticsService)
	svc.now = func() time.Time { return analyticsNow }
	return svc, m
}

func sampleTransactions(userID, categoryID uuid.UUID) []models.Transaction {
	return []models.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(300), Description: "Mercado", Type: models.TransactionTypeExpense, Date: time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC), CategoryID: &categoryID},
		{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(100), Description: "Cafe", Type: models.TransactionTypeExpense, Date: time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(2000), Description: "Salario", Type: models.TransactionTypeIncome, Date: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)},
	}
}

func TestGetSnapshotComputesAndCaches(t *testing.T) {
	svc, m := newAnalyticsService(t)
	ctx := context.Background()
	userID := uuid.New()
	food := models.Category{ID: uuid.New(), UserID: userID, Name: "Comida"}
	sel := models.PeriodSelector{Period: models.PeriodMonth}
	key := cache.SnapshotKey(userID, 4, sel, analyticsNow)

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID, Timezone: "UTC"}, nil)
	m.snapshots.EXPECT().Version(ctx, userID).Return(int64(4), nil)
	m.snapshots.EXPECT().Get(ctx, key).Return(nil, nil)
	m.transactions.EXPECT().GetAllByUserID(ctx, userID).Return(sampleTransactions(userID, food.ID), nil)
	m.categories.EXPECT().GetByUserID(ctx, userID).Return([]models.Category{food}, nil)
	m.snapshots.EXPECT().Set(ctx, key, gomock.Any()).Return(nil)

	snapshot, err := svc.GetSnapshot(ctx, userID, sel)

	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.TransactionCount)
	assert.True(t, decimal.NewFromInt(400).Equal(snapshot.TotalExpenses))
	assert.True(t, decimal.NewFromInt(2000).Equal(snapshot.TotalIncome))
	require.Len(t, snapshot.CategoryTotals, 2)
	assert.Equal(t, "Comida", snapshot.CategoryTotals[0].Name)
	assert.Equal(t, models.UncategorizedLabel, snapshot.CategoryTotals[1].Name)
	require.NotNil(t, snapshot.Predictions)
	assert.Len(t, snapshot.Timeline, 31)
}

func TestGetSnapshotCacheHit(t *testing.T) {
	svc, m := newAnalyticsService(t)
	ctx := context.Background()
	userID := uuid.New()
	sel := models.PeriodSelector{Period: models.PeriodWeek}
	cached := &models.AnalyticsSnapshot{Period: models.PeriodWeek, TransactionCount: 9}

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.snapshots.EXPECT().Version(ctx, userID).Return(int64(1), nil)
	m.snapshots.EXPECT().Get(ctx, cache.SnapshotKey(userID, 1, sel, analyticsNow)).Return(cached, nil)

	snapshot, err := svc.GetSnapshot(ctx, userID, sel)

	require.NoError(t, err)
	assert.Same(t, cached, snapshot)
}

func TestGetSnapshotCacheDown(t *testing.T) {
	svc, m := newAnalyticsService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	m.snapshots.EXPECT().Version(ctx, userID).Return(int64(0), assert.AnError)
	m.transactions.EXPECT().GetAllByUserID(ctx, userID).Return(nil, nil)
	m.categories.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)

	snapshot, err := svc.GetSnapshot(ctx, userID, models.PeriodSelector{Period: models.PeriodDay})

	require.NoError(t, err)
	assert.Zero(t, snapshot.TransactionCount)
	assert.Len(t, snapshot.Timeline, 16)
	assert.Nil(t, snapshot.Predictions)
}

func TestGetSnapshotInvalidPeriod(t *testing.T) {
	svc, _ := newAnalyticsService(t)

	_, err := svc.GetSnapshot(context.Background(), uuid.New(), models.PeriodSelector{Period: "year"})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGetSnapshotUsesUserTimezone(t *testing.T) {
	svc, m := newAnalyticsService(t)
	ctx := context.Background()
	userID := uuid.New()

	// 15:30 UTC = 10:30 в Боготе, день начинается в 05:00 UTC
	m.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID, Timezone: "America/Bogota"}, nil)
	m.snapshots.EXPECT().Version(ctx, userID).Return(int64(0), nil)
	m.snapshots.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	m.transactions.EXPECT().GetAllByUserID(ctx, userID).Return(nil, nil)
	m.categories.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)
	m.snapshots.EXPECT().Set(ctx, gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := svc.GetSnapshot(ctx, userID, models.PeriodSelector{Period: models.PeriodDay})

	require.NoError(t, err)
	if snapshot.Range.Start.Location().String() != "America/Bogota" {
		t.Skip("tzdata not available")
	}
	assert.Equal(t, time.Date(2026, 10, 14, 5, 0, 0, 0, time.UTC), snapshot.Range.Start.UTC())
	assert.Len(t, snapshot.Timeline, 11)
}

func TestGetPredictionsUsesMonth(t *testing.T) {
	svc, m := newAnalyticsService(t)
	ctx := context.Background()
	userID := uuid.New()
	monthKey := cache.SnapshotKey(userID, 2, models.PeriodSelector{Period: models.PeriodMonth}, analyticsNow)
	prediction := &models.Prediction{DaysRemaining: 17}

	m.users.EXPECT().GetByID(ctx, userID).Return(nil, repository.ErrNotFound)
	m.snapshots.EXPECT().Version(ctx, userID).Return(int64(2), nil)
	m.snapshots.EXPECT().Get(ctx, monthKey).Return(&models.AnalyticsSnapshot{Predictions: prediction}, nil)

	got, err := svc.GetPredictions(ctx, userID)

	require.NoError(t, err)
	assert.Same(t, prediction, got)
}
