package analytics

import (
	"sort"

	"github.com/alligatorO15/fin-dashboard/internal/models"
)

const (
	minCoOccurrence = 2
	maxCorrelations = 5
)

type categoryPair struct {
	a, b string
}

func newPair(x, y string) categoryPair {
	if y < x {
		x, y = y, x
	}
	return categoryPair{a: x, b: y}
}

// Correlate пары категорий, расходы по которым случаются в один календарный день
func Correlate(txs []models.Transaction, tree *CategoryTree) []models.Correlation {
	var days []string
	perDay := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		day := tx.Date.Format("2006-01-02")
		if _, ok := seen[day]; !ok {
			seen[day] = make(map[string]bool)
			days = append(days, day)
		}
		name := tree.Path(tx.CategoryID)
		if !seen[day][name] {
			seen[day][name] = true
			perDay[day] = append(perDay[day], name)
		}
	}

	var pairs []categoryPair
	counts := make(map[categoryPair]int)
	for _, day := range days {
		names := perDay[day]
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				p := newPair(names[i], names[j])
				if _, ok := counts[p]; !ok {
					pairs = append(pairs, p)
				}
				counts[p]++
			}
		}
	}

	correlations := make([]models.Correlation, 0)
	for _, p := range pairs {
		if counts[p] < minCoOccurrence {
			continue
		}
		correlations = append(correlations, models.Correlation{
			CategoryA:         p.a,
			CategoryB:         p.b,
			CoOccurrenceCount: counts[p],
			Strength:          float64(counts[p]) / float64(len(days)),
		})
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return correlations[i].CoOccurrenceCount > correlations[j].CoOccurrenceCount
	})
	if len(correlations) > maxCorrelations {
		correlations = correlations[:maxCorrelations]
	}
	return correlations
}
