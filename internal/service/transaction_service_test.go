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

type transactionMocks struct {
	transactions *repository.MockTransactionRepository
	categories   *repository.MockCategoryRepository
	snapshots    *cache.MockSnapshotCache
}

func newTransactionService(t *testing.T) (TransactionService, transactionMocks) {
	ctrl := gomock.NewController(t)
	m := transactionMocks{
		transactions: repository.NewMockTransactionRepository(ctrl),
		categories:   repository.NewMockCategoryRepository(ctrl),
		snapshots:    cache.NewMockSnapshotCache(ctrl),
	}
	return NewTransactionService(m.transactions, m.categories, m.snapshots), m
}

func TestCreateTransaction(t *testing.T) {
	svc, m := newTransactionService(t)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	date := time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC)

	m.categories.EXPECT().GetByID(ctx, userID, categoryID).Return(&models.Category{ID: categoryID}, nil)
	m.transactions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, tx *models.Transaction) error {
		assert.Equal(t, userID, tx.UserID)
		assert.Equal(t, models.PaymentMethodManual, tx.PaymentMethod)
		assert.Equal(t, "Netflix", tx.Description)
		require.NotNil(t, tx.Bank)
		assert.Equal(t, "Bancolombia", *tx.Bank)
		return nil
	})
	m.snapshots.EXPECT().BumpVersion(ctx, userID).Return(nil)

	tx, err := svc.Create(ctx, userID, &models.TransactionCreate{
		Amount:      decimal.NewFromInt(45900),
		Description: " Netflix ",
		Date:        date,
		Type:        models.TransactionTypeExpense,
		CategoryID:  &categoryID,
		Bank:        strPtr(" Bancolombia "),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, date, tx.Date)
}

func TestCreateTransactionValidation(t *testing.T) {
	base := func() *models.TransactionCreate {
		return &models.TransactionCreate{
			Amount:      decimal.NewFromInt(100),
			Description: "Cafe",
			Date:        time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC),
			Type:        models.TransactionTypeExpense,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.TransactionCreate)
		want   error
	}{
		{"negative amount", func(in *models.TransactionCreate) { in.Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{"blank description", func(in *models.TransactionCreate) { in.Description = "  " }, ErrInvalidDescription},
		{"missing date", func(in *models.TransactionCreate) { in.Date = time.Time{} }, ErrInvalidDate},
		{"unknown type", func(in *models.TransactionCreate) { in.Type = "transfer" }, ErrInvalidTransactionType},
		{"unknown payment method", func(in *models.TransactionCreate) { in.PaymentMethod = "cash" }, ErrInvalidPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTransactionService(t)
			input := base()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateTransactionForeignCategory(t *testing.T) {
	svc, m := newTransactionService(t)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	m.categories.EXPECT().GetByID(ctx, userID, categoryID).Return(nil, repository.ErrNotFound)

	_, err := svc.Create(ctx, userID, &models.TransactionCreate{
		Amount:      decimal.NewFromInt(100),
		Description: "Cafe",
		Date:        time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC),
		Type:        models.TransactionTypeExpense,
		CategoryID:  &categoryID,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateTransaction(t *testing.T) {
	svc, m := newTransactionService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(100),
		Description:   "Cafe",
		Date:          time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC),
		Type:          models.TransactionTypeExpense,
		PaymentMethod: models.PaymentMethodCard,
		CategoryID:    uuidPtr(uuid.New()),
		Bank:          strPtr("Nequi"),
	}

	m.transactions.EXPECT().GetByID(ctx, userID, existing.ID).Return(existing, nil)
	m.transactions.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, tx *models.Transaction) error {
		assert.True(t, decimal.NewFromInt(250).Equal(tx.Amount))
		assert.Nil(t, tx.CategoryID)
		assert.Nil(t, tx.Bank)
		assert.Equal(t, "Cafe", tx.Description)
		return nil
	})
	m.snapshots.EXPECT().BumpVersion(ctx, userID).Return(nil)

	amount := decimal.NewFromInt(250)
	_, err := svc.Update(ctx, userID, existing.ID, &models.TransactionUpdate{
		Amount:        &amount,
		ClearCategory: true,
		Bank:          strPtr(""),
	})
	require.NoError(t, err)
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc, m := newTransactionService(t)
	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	m.transactions.EXPECT().GetByID(ctx, userID, id).Return(nil, repository.ErrNotFound)

	_, err := svc.Update(ctx, userID, id, &models.TransactionUpdate{})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestSetReported(t *testing.T) {
	svc, m := newTransactionService(t)
	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	m.transactions.EXPECT().SetReported(ctx, userID, id, true).Return(nil)
	m.snapshots.EXPECT().BumpVersion(ctx, userID).Return(nil)
	m.transactions.EXPECT().GetByID(ctx, userID, id).Return(&models.Transaction{ID: id, Reported: true}, nil)

	tx, err := svc.SetReported(ctx, userID, id, true)
	require.NoError(t, err)
	assert.True(t, tx.Reported)
}

func TestDeleteTransaction(t *testing.T) {
	svc, m := newTransactionService(t)
	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()

	m.transactions.EXPECT().Delete(ctx, userID, id).Return(repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, userID, id), ErrTransactionNotFound)

	m.transactions.EXPECT().Delete(ctx, userID, id).Return(nil)
	m.snapshots.EXPECT().BumpVersion(ctx, userID).Return(assert.AnError)
	assert.NoError(t, svc.Delete(ctx, userID, id))
}

func TestGetByFilterRejectsUnknownType(t *testing.T) {
	svc, _ := newTransactionService(t)
	kind := models.TransactionType("transfer")

	_, err := svc.GetByFilter(context.Background(), uuid.New(), &models.TransactionFilter{Type: &kind})
	assert.ErrorIs(t, err, ErrInvalidTransactionType)
}
