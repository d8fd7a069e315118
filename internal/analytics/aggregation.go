package analytics

import (
	"strings"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// Aggregation суммы по категориям и банкам для отфильтрованного периода
type Aggregation struct {
	CategoryTotals []models.NamedTotal
	BankTotals     []models.NamedTotal
	TotalExpenses  decimal.Decimal
	TotalIncome    decimal.Decimal
}

func bankLabel(tx *models.Transaction) string {
	if tx.Bank == nil || strings.TrimSpace(*tx.Bank) == "" {
		return models.UnknownBankLabel
	}
	return strings.TrimSpace(*tx.Bank)
}

// Aggregate считает расходы по полному пути категории и по банку.
// Доход идет только в TotalIncome
func Aggregate(txs []models.Transaction, tree *CategoryTree) Aggregation {
	byCategory := newAccumulator()
	byBank := newAccumulator()
	agg := Aggregation{}

	for i := range txs {
		tx := &txs[i]
		switch tx.Type {
		case models.TransactionTypeExpense:
			agg.TotalExpenses = agg.TotalExpenses.Add(tx.Amount)
			byCategory.add(tree.Path(tx.CategoryID), tx.Amount)
			byBank.add(bankLabel(tx), tx.Amount)
		case models.TransactionTypeIncome:
			agg.TotalIncome = agg.TotalIncome.Add(tx.Amount)
		}
	}

	agg.CategoryTotals = byCategory.sorted(agg.TotalExpenses)
	agg.BankTotals = byBank.sorted(agg.TotalExpenses)
	return agg
}

// categorySums расходы по полному пути категории, без сортировки
func categorySums(txs []models.Transaction, tree *CategoryTree) *accumulator {
	acc := newAccumulator()
	for i := range txs {
		if txs[i].IsExpense() {
			acc.add(tree.Path(txs[i].CategoryID), txs[i].Amount)
		}
	}
	return acc
}
