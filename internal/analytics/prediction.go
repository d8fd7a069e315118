package analytics

import (
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// Predict линейно экстраполирует расходы месяца по среднему за прошедшие дни
func Predict(monthExpenses decimal.Decimal, now time.Time) *models.Prediction {
	day := now.Day()
	total := daysInMonth(now)

	dailyAverage := monthExpenses.Div(decimal.NewFromInt(int64(day)))
	remaining := total - day

	return &models.Prediction{
		CurrentTotal:       monthExpenses,
		PredictedTotal:     dailyAverage.Mul(decimal.NewFromInt(int64(total))).Round(2),
		PredictedRemaining: dailyAverage.Mul(decimal.NewFromInt(int64(remaining))).Round(2),
		DailyAverage:       dailyAverage.Round(2),
		DaysRemaining:      remaining,
		ProgressPct:        percentOf(decimal.NewFromInt(int64(day)), decimal.NewFromInt(int64(total))),
	}
}
