package analytics

import (
	"math"
	"sort"

	"github.com/alligatorO15/fin-dashboard/internal/models"
)

const (
	minAnomalySample = 10
	anomalySigmas    = 2.0
	maxAnomalies     = 5
)

// DetectAnomalies расходы выше mean + 2σ (σ по генеральной совокупности).
// Нужно минимум 10 расходов, иначе статистика бессмысленна
func DetectAnomalies(txs []models.Transaction, tree *CategoryTree) []models.Anomaly {
	anomalies := make([]models.Anomaly, 0)

	exp := expenses(txs)
	if len(exp) < minAnomalySample {
		return anomalies
	}

	amounts := make([]float64, len(exp))
	var sum float64
	for i, tx := range exp {
		amounts[i] = tx.Amount.InexactFloat64()
		sum += amounts[i]
	}
	mean := sum / float64(len(amounts))

	var sq float64
	for _, a := range amounts {
		sq += (a - mean) * (a - mean)
	}
	stddev := math.Sqrt(sq / float64(len(amounts)))
	if stddev == 0 {
		return anomalies
	}

	threshold := mean + anomalySigmas*stddev
	for i, tx := range exp {
		if amounts[i] <= threshold {
			continue
		}
		anomalies = append(anomalies, models.Anomaly{
			Transaction:     tx,
			DeviationFactor: math.Round((amounts[i]-mean)/stddev*100) / 100,
			Category:        tree.Path(tx.CategoryID),
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].DeviationFactor > anomalies[j].DeviationFactor
	})
	if len(anomalies) > maxAnomalies {
		anomalies = anomalies[:maxAnomalies]
	}
	return anomalies
}
