package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	recurringWindowDays  = 30
	recurringKeyLength   = 20
	maxRecurringPatterns = 5
	defaultIntervalDays  = 30.0
)

// NormalizeDescription ключ группировки: без диакритики, нижний регистр,
// без цифр и знаков, первые 20 символов
func NormalizeDescription(description string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), description)
	if err != nil {
		folded = description
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsDigit(r):
		case unicode.IsLetter(r), r == '_', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	key := []rune(strings.TrimSpace(b.String()))
	if len(key) > recurringKeyLength {
		key = key[:recurringKeyLength]
	}
	return string(key)
}

func frequencyLabel(intervalDays float64) string {
	switch {
	case intervalDays <= 7:
		return "Weekly"
	case intervalDays <= 15:
		return "Biweekly"
	case intervalDays <= 32:
		return "Monthly"
	default:
		return fmt.Sprintf("Every %d days", int(math.Round(intervalDays)))
	}
}

// DetectRecurring ищет повторяющиеся расходы за последние 30 дней от now
func DetectRecurring(txs []models.Transaction, tree *CategoryTree, now time.Time) []models.RecurringPattern {
	windowStart := now.AddDate(0, 0, -recurringWindowDays)

	var keys []string
	groups := make(map[string][]models.Transaction)
	for _, tx := range txs {
		if !tx.IsExpense() || tx.Date.Before(windowStart) || tx.Date.After(now) {
			continue
		}
		key := NormalizeDescription(tx.Description)
		if key == "" {
			continue
		}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], tx)
	}

	patterns := make([]models.RecurringPattern, 0)
	for _, key := range keys {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		patterns = append(patterns, buildPattern(group, tree))
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].EstimatedMonthlyImpact.GreaterThan(patterns[j].EstimatedMonthlyImpact)
	})
	if len(patterns) > maxRecurringPatterns {
		patterns = patterns[:maxRecurringPatterns]
	}
	return patterns
}

func buildPattern(group []models.Transaction, tree *CategoryTree) models.RecurringPattern {
	sorted := append([]models.Transaction(nil), group...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	total := decimal.Zero
	for _, tx := range sorted {
		total = total.Add(tx.Amount)
	}
	average := total.Div(decimal.NewFromInt(int64(len(sorted))))

	var intervalSum float64
	intervals := 0
	for i := 1; i < len(sorted); i++ {
		intervalSum += sorted[i].Date.Sub(sorted[i-1].Date).Hours() / 24
		intervals++
	}
	avgInterval := defaultIntervalDays
	if intervals > 0 {
		avgInterval = intervalSum / float64(intervals)
	}

	// платежи в один и тот же момент: делить на ноль нельзя, считаем месячными
	impactInterval := avgInterval
	if impactInterval <= 0 {
		impactInterval = defaultIntervalDays
	}
	impact := average.Mul(decimal.NewFromFloat(defaultIntervalDays)).Div(decimal.NewFromFloat(impactInterval))

	latest := sorted[len(sorted)-1]
	return models.RecurringPattern{
		Description:            latest.Description,
		Category:               tree.Path(latest.CategoryID),
		AverageAmount:          average.Round(2),
		FrequencyLabel:         frequencyLabel(avgInterval),
		OccurrenceCount:        len(sorted),
		Bank:                   bankLabel(&latest),
		AverageIntervalDays:    math.Round(avgInterval*100) / 100,
		EstimatedMonthlyImpact: impact.Round(2),
	}
}
