package analytics

import (
	"fmt"
	"testing"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEfficiency(t *testing.T) {
	var timeline []models.TimelineBucket
	for i, amount := range []int64{0, 70, 10, 0, 40, 90, 20, 60, 30, 80, 50} {
		timeline = append(timeline, models.TimelineBucket{
			Label:      fmt.Sprintf("%02d", i+1),
			ExpenseSum: decimal.NewFromInt(amount),
		})
	}

	eff := AnalyzeEfficiency(timeline)

	require.NotNil(t, eff)
	require.Len(t, eff.BestDays, 5)
	require.Len(t, eff.WorstDays, 5)
	assertDecimal(t, "10", eff.BestDays[0].Amount)
	assertDecimal(t, "50", eff.BestDays[4].Amount)
	assertDecimal(t, "90", eff.WorstDays[0].Amount)
	assertDecimal(t, "50", eff.WorstDays[4].Amount)
	assert.Equal(t, "06", eff.WorstDays[0].Label)
	assertDecimal(t, "50", eff.AverageDailySpend)
}

func TestAnalyzeEfficiencyFewDays(t *testing.T) {
	timeline := []models.TimelineBucket{
		{Label: "01", ExpenseSum: decimal.NewFromInt(30)},
		{Label: "02", ExpenseSum: decimal.NewFromInt(10)},
	}

	eff := AnalyzeEfficiency(timeline)

	require.NotNil(t, eff)
	assert.Len(t, eff.BestDays, 2)
	assert.Equal(t, "02", eff.BestDays[0].Label)
	assert.Equal(t, "01", eff.WorstDays[0].Label)
	assertDecimal(t, "20", eff.AverageDailySpend)
}

func TestAnalyzeEfficiencyNoSpending(t *testing.T) {
	assert.Nil(t, AnalyzeEfficiency([]models.TimelineBucket{{Label: "01"}}))
	assert.Nil(t, AnalyzeEfficiency(nil))
}
