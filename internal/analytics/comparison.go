package analytics

import (
	"sort"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

const maxCategoryDeltas = 5

// ComparePeriods сравнивает текущий диапазон с предыдущим той же длины.
// Для day и custom сравнения нет
func ComparePeriods(all []models.Transaction, current Aggregation, r models.DateRange, period models.Period, tree *CategoryTree) *models.PeriodComparison {
	if period == models.PeriodDay || period == models.PeriodCustom {
		return nil
	}

	prevStart, prevEnd := PreviousRange(r)
	prevTxs := between(all, prevStart, prevEnd)

	prevTotals := models.PeriodTotals{Start: prevStart, End: prevEnd}
	for _, tx := range prevTxs {
		switch tx.Type {
		case models.TransactionTypeExpense:
			prevTotals.Expenses = prevTotals.Expenses.Add(tx.Amount)
		case models.TransactionTypeIncome:
			prevTotals.Income = prevTotals.Income.Add(tx.Amount)
		}
	}
	previous := categorySums(prevTxs, tree)

	cur := newAccumulator()
	for _, ct := range current.CategoryTotals {
		cur.add(ct.Name, ct.Total)
	}
	names := append([]string(nil), cur.order...)
	for _, name := range previous.order {
		if !cur.has(name) {
			names = append(names, name)
		}
	}

	deltas := make([]models.CategoryDelta, 0, len(names))
	for _, name := range names {
		deltas = append(deltas, categoryDelta(name, cur.get(name), previous.get(name)))
	}
	sort.SliceStable(deltas, func(i, j int) bool {
		return deltas[i].AbsoluteChange.Abs().GreaterThan(deltas[j].AbsoluteChange.Abs())
	})
	if len(deltas) > maxCategoryDeltas {
		deltas = deltas[:maxCategoryDeltas]
	}

	expenseChange := current.TotalExpenses.Sub(prevTotals.Expenses)
	incomeChange := current.TotalIncome.Sub(prevTotals.Income)
	return &models.PeriodComparison{
		PreviousTotals: prevTotals,
		Deltas: models.PeriodDeltas{
			ExpenseChange:    expenseChange,
			ExpenseChangePct: percentChange(current.TotalExpenses, prevTotals.Expenses),
			IncomeChange:     incomeChange,
			IncomeChangePct:  percentChange(current.TotalIncome, prevTotals.Income),
		},
		CategoryDeltas: deltas,
	}
}

func categoryDelta(name string, cur, prev decimal.Decimal) models.CategoryDelta {
	d := models.CategoryDelta{
		Category:       name,
		Current:        cur,
		Previous:       prev,
		AbsoluteChange: cur.Sub(prev),
	}
	switch {
	case prev.IsPositive():
		d.PercentageChange = percentChange(cur, prev)
	case cur.IsPositive():
		d.PercentageChange = hundred
	}
	return d
}
