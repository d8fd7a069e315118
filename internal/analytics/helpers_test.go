package analytics

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// среда, 14 октября 2026, 15:30 UTC
var testNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func expense(amount int64, description string, date time.Time, categoryID *uuid.UUID) models.Transaction {
	return models.Transaction{
		ID:            uuid.New(),
		Amount:        decimal.NewFromInt(amount),
		Description:   description,
		Date:          date,
		Type:          models.TransactionTypeExpense,
		PaymentMethod: models.PaymentMethodCard,
		CategoryID:    categoryID,
	}
}

func income(amount int64, date time.Time) models.Transaction {
	return models.Transaction{
		ID:            uuid.New(),
		Amount:        decimal.NewFromInt(amount),
		Description:   "Salario",
		Date:          date,
		Type:          models.TransactionTypeIncome,
		PaymentMethod: models.PaymentMethodTransfer,
	}
}

func category(name string, parent *models.Category) models.Category {
	c := models.Category{ID: uuid.New(), Name: name}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	return c
}

func strPtr(s string) *string {
	return &s
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func loadZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func assertIncreasing(t *testing.T, starts []time.Time) {
	t.Helper()
	for i := 1; i < len(starts); i++ {
		assert.True(t, starts[i].After(starts[i-1]), "bucket %d (%s) is not after %s", i, starts[i], starts[i-1])
	}
}
