// Package analytics превращает список транзакций пользователя в снимок статистики для дашборда.
// Пакет чистый: без I/O, без глобального состояния, каждый вызов считает всё заново.
package analytics

import (
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
)

type Engine struct {
	loc *time.Location
	now func() time.Time
}

// NewEngine loc задает календарные границы (nil = UTC), now источник текущего времени (nil = time.Now)
func NewEngine(loc *time.Location, now func() time.Time) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{loc: loc, now: now}
}

func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

// Snapshot считает все разделы дашборда для выбранного периода
func (e *Engine) Snapshot(txs []models.Transaction, categories []models.Category, sel models.PeriodSelector) *models.AnalyticsSnapshot {
	now := e.Now()
	if !sel.Period.Valid() {
		sel.Period = models.PeriodMonth
	}

	// все даты в одной локации, иначе день и месяц поедут
	local := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		tx.Date = tx.Date.In(e.loc)
		local[i] = tx
	}

	tree := NewCategoryTree(categories)
	r := ResolveRange(sel, now)
	filtered := FilterRange(local, r)

	agg := Aggregate(filtered, tree)
	timeline := BuildTimeline(filtered, r)

	snapshot := &models.AnalyticsSnapshot{
		Period:            sel.Period,
		Range:             r,
		TotalExpenses:     agg.TotalExpenses,
		TotalIncome:       agg.TotalIncome,
		Balance:           agg.TotalIncome.Sub(agg.TotalExpenses),
		TransactionCount:  len(filtered),
		CategoryTotals:    agg.CategoryTotals,
		BankTotals:        agg.BankTotals,
		Timeline:          timeline,
		Trends:            HalfSplitTrend(timeline),
		CategoryTrends:    CategoryMonthTrends(local, tree, now),
		RecurringPatterns: DetectRecurring(local, tree, now),
		PeriodComparison:  ComparePeriods(local, agg, r, sel.Period, tree),
		Anomalies:         DetectAnomalies(filtered, tree),
		WeeklyPatterns:    WeeklyPatterns(filtered),
		Correlations:      Correlate(filtered, tree),
	}

	if sel.Period == models.PeriodMonth {
		snapshot.Predictions = Predict(agg.TotalExpenses, now)
		snapshot.EfficiencyAnalysis = AnalyzeEfficiency(timeline)
	}

	return snapshot
}
