package analytics

import (
	"sort"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// порядок дней недели до сортировки, от понедельника
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeeklyPatterns расходы по дням недели, по убыванию суммы.
// Дни без расходов не попадают в результат
func WeeklyPatterns(txs []models.Transaction) []models.WeekdayPattern {
	totals := make(map[time.Weekday]decimal.Decimal, 7)
	counts := make(map[time.Weekday]int, 7)
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		day := tx.Date.Weekday()
		totals[day] = totals[day].Add(tx.Amount)
		counts[day]++
	}

	patterns := make([]models.WeekdayPattern, 0, len(counts))
	for _, day := range weekOrder {
		count := counts[day]
		if count == 0 {
			continue
		}
		patterns = append(patterns, models.WeekdayPattern{
			Day:     day,
			DayName: day.String(),
			Total:   totals[day],
			Average: totals[day].Div(decimal.NewFromInt(int64(count))).Round(2),
			Count:   count,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Total.GreaterThan(patterns[j].Total)
	})
	return patterns
}
