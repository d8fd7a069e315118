package analytics

import (
	"testing"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelate(t *testing.T) {
	bar := category("Bares", nil)
	taxi := category("Taxi", nil)
	food := category("Comida", nil)
	tree := NewCategoryTree([]models.Category{bar, taxi, food})

	d1 := time.Date(2026, 10, 2, 21, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 10, 9, 22, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 10, 10, 13, 0, 0, 0, time.UTC)

	txs := []models.Transaction{
		expense(100, "cerveza", d1, &bar.ID),
		expense(100, "cerveza", d1, &bar.ID),
		expense(50, "uber", d1.Add(2*time.Hour), &taxi.ID),
		expense(100, "coctel", d2, &bar.ID),
		expense(40, "uber", d2, &taxi.ID),
		expense(60, "almuerzo", d3, &food.ID),
		expense(20, "uber", d3, &taxi.ID),
		income(1000, d1),
	}

	correlations := Correlate(txs, tree)

	require.Len(t, correlations, 1)
	c := correlations[0]
	assert.Equal(t, "Bares", c.CategoryA)
	assert.Equal(t, "Taxi", c.CategoryB)
	assert.Equal(t, 2, c.CoOccurrenceCount)
	assert.InDelta(t, 2.0/3.0, c.Strength, 1e-9)
}

func TestCorrelateSymmetricPairs(t *testing.T) {
	a := category("A", nil)
	b := category("B", nil)
	tree := NewCategoryTree([]models.Category{a, b})

	d1 := time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	txs := []models.Transaction{
		expense(1, "x", d1, &a.ID), expense(1, "y", d1, &b.ID),
		expense(1, "y", d2, &b.ID), expense(1, "x", d2, &a.ID),
	}

	correlations := Correlate(txs, tree)

	require.Len(t, correlations, 1)
	assert.Equal(t, 2, correlations[0].CoOccurrenceCount)
	assert.InDelta(t, 1.0, correlations[0].Strength, 1e-9)
}
