package analytics

import (
	"sort"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percentOf доля part от whole в %, 0 если whole == 0
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// percentChange изменение cur относительно prev в %, 0 если prev == 0
func percentChange(cur, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).Round(2)
}

func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// accumulator суммирует по ключу и помнит порядок первого появления ключа,
// чтобы при равных суммах порядок был стабильным
type accumulator struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newAccumulator() *accumulator {
	return &accumulator{sums: make(map[string]decimal.Decimal)}
}

func (a *accumulator) add(key string, amount decimal.Decimal) {
	cur, ok := a.sums[key]
	if !ok {
		a.order = append(a.order, key)
	}
	a.sums[key] = cur.Add(amount)
}

func (a *accumulator) get(key string) decimal.Decimal {
	return a.sums[key]
}

func (a *accumulator) has(key string) bool {
	_, ok := a.sums[key]
	return ok
}

func (a *accumulator) total() decimal.Decimal {
	total := decimal.Zero
	for _, key := range a.order {
		total = total.Add(a.sums[key])
	}
	return total
}

// sorted возвращает суммы по убыванию, проценты считаются от grand
func (a *accumulator) sorted(grand decimal.Decimal) []models.NamedTotal {
	out := make([]models.NamedTotal, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, models.NamedTotal{
			Name:       key,
			Total:      a.sums[key],
			Percentage: percentOf(a.sums[key], grand),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}
