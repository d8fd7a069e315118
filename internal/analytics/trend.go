package analytics

import (
	"sort"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// порог в % ниже которого изменение категории считается стабильным
var stableThreshold = decimal.NewFromInt(5)

// HalfSplitTrend сравнивает вторую половину таймлайна с первой.
// При одном бакете (или пустой оси) тренда нет
func HalfSplitTrend(timeline []models.TimelineBucket) models.Trends {
	if len(timeline) <= 1 {
		return models.Trends{}
	}

	mid := len(timeline) / 2
	var earlierExp, recentExp, earlierInc, recentInc decimal.Decimal
	for i, b := range timeline {
		if i < mid {
			earlierExp = earlierExp.Add(b.ExpenseSum)
			earlierInc = earlierInc.Add(b.IncomeSum)
		} else {
			recentExp = recentExp.Add(b.ExpenseSum)
			recentInc = recentInc.Add(b.IncomeSum)
		}
	}

	return models.Trends{
		ExpenseTrendPct: percentChange(recentExp, earlierExp),
		IncomeTrendPct:  percentChange(recentInc, earlierInc),
	}
}

// CategoryMonthTrends текущий календарный месяц против прошлого по всем транзакциям,
// независимо от выбранного периода. Только расходы
func CategoryMonthTrends(txs []models.Transaction, tree *CategoryTree, now time.Time) []models.CategoryTrend {
	curStart := startOfMonth(now)
	curEnd := addMonths(curStart, 1)
	prevStart := addMonths(curStart, -1)

	current := categorySums(between(txs, curStart, curEnd), tree)
	previous := categorySums(between(txs, prevStart, curStart), tree)

	names := append([]string(nil), current.order...)
	for _, name := range previous.order {
		if !current.has(name) {
			names = append(names, name)
		}
	}

	trends := make([]models.CategoryTrend, 0, len(names))
	for _, name := range names {
		trends = append(trends, classifyTrend(name, current.get(name), previous.get(name)))
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].ChangePercent.Abs().GreaterThan(trends[j].ChangePercent.Abs())
	})
	return trends
}

func classifyTrend(name string, cur, prev decimal.Decimal) models.CategoryTrend {
	trend := models.CategoryTrend{Category: name, CurrentAmount: cur, PreviousAmount: prev}

	switch {
	case prev.IsZero() && cur.IsPositive():
		trend.ChangeType = models.ChangeNew
		trend.ChangePercent = hundred
	case cur.IsZero() && prev.IsPositive():
		trend.ChangeType = models.ChangeDecrease
		trend.ChangePercent = hundred.Neg()
	default:
		trend.ChangePercent = percentChange(cur, prev)
		switch {
		case trend.ChangePercent.Abs().LessThan(stableThreshold):
			trend.ChangeType = models.ChangeStable
		case trend.ChangePercent.IsPositive():
			trend.ChangeType = models.ChangeIncrease
		default:
			trend.ChangeType = models.ChangeDecrease
		}
	}
	return trend
}
