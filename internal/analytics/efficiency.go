package analytics

import (
	"sort"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

const efficiencyDays = 5

// AnalyzeEfficiency лучшие (меньше всего трат) и худшие дни по таймлайну.
// Дни без трат не учитываются, nil если трат не было вообще
func AnalyzeEfficiency(timeline []models.TimelineBucket) *models.EfficiencyAnalysis {
	days := make([]models.DaySpend, 0, len(timeline))
	total := decimal.Zero
	for _, b := range timeline {
		if b.ExpenseSum.IsZero() {
			continue
		}
		days = append(days, models.DaySpend{Label: b.Label, FullLabel: b.FullLabel, Amount: b.ExpenseSum})
		total = total.Add(b.ExpenseSum)
	}
	if len(days) == 0 {
		return nil
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Amount.LessThan(days[j].Amount)
	})

	n := efficiencyDays
	if len(days) < n {
		n = len(days)
	}

	best := append([]models.DaySpend(nil), days[:n]...)
	worst := make([]models.DaySpend, 0, n)
	for i := len(days) - 1; i >= len(days)-n; i-- {
		worst = append(worst, days[i])
	}

	return &models.EfficiencyAnalysis{
		BestDays:          best,
		WorstDays:         worst,
		AverageDailySpend: total.Div(decimal.NewFromInt(int64(len(days)))).Round(2),
	}
}
