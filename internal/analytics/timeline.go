package analytics

import (
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
)

// hourStart начало локального часа t. Сдвиг идет по абсолютному времени,
// поэтому повторный час при переводе назад остается отдельным
func hourStart(t time.Time) time.Time {
	return t.Add(-(time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())))
}

// bucketKey календарный ключ бакета: дата для дней и месяцев, момент начала для часов
type bucketKey struct {
	year  int
	month time.Month
	day   int
	hour  int64
}

func keyOf(t time.Time, g models.Granularity) bucketKey {
	y, m, d := t.Date()
	switch g {
	case models.GranularityHour:
		return bucketKey{hour: hourStart(t).Unix()}
	case models.GranularityMonth:
		return bucketKey{year: y, month: m}
	default:
		return bucketKey{year: y, month: m, day: d}
	}
}

func bucketLabels(t time.Time, g models.Granularity) (string, string) {
	switch g {
	case models.GranularityHour:
		return t.Format("15:04"), t.Format("Mon 02 Jan 2006, 15:04")
	case models.GranularityMonth:
		return t.Format("Jan"), t.Format("January 2006")
	default:
		return t.Format("02 Jan"), t.Format("Monday, 02 January 2006")
	}
}

// BucketStarts начала всех бакетов по оси [r.Start, r.AxisEnd].
// Дни и месяцы перебираются по календарю, часы шагом в реальный час
func BucketStarts(r models.DateRange) []time.Time {
	var starts []time.Time
	if r.Granularity == models.GranularityHour {
		for cur := hourStart(r.Start); !cur.After(r.AxisEnd); cur = cur.Add(time.Hour) {
			starts = append(starts, cur)
		}
		return starts
	}

	loc := r.Start.Location()
	y, m, d := r.Start.Date()
	ey, em, ed := r.AxisEnd.In(loc).Date()
	if r.Granularity == models.GranularityMonth {
		d, ed = 1, 1
	}
	for civil(y, m, d) <= civil(ey, em, ed) {
		starts = append(starts, dayStart(y, m, d, loc))
		if r.Granularity == models.GranularityMonth {
			m++
		} else {
			d++
		}
		y, m, d = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Date()
	}
	return starts
}

// BuildTimeline по бакету на каждую единицу гранулярности, пустые бакеты остаются с нулями
func BuildTimeline(txs []models.Transaction, r models.DateRange) []models.TimelineBucket {
	starts := BucketStarts(r)
	timeline := make([]models.TimelineBucket, len(starts))
	index := make(map[bucketKey]int, len(starts))
	for i, start := range starts {
		label, full := bucketLabels(start, r.Granularity)
		timeline[i] = models.TimelineBucket{Label: label, FullLabel: full, Start: start}
		index[keyOf(start, r.Granularity)] = i
	}

	loc := r.Start.Location()
	for i := range txs {
		tx := &txs[i]
		idx, ok := index[keyOf(tx.Date.In(loc), r.Granularity)]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeExpense:
			timeline[idx].ExpenseSum = timeline[idx].ExpenseSum.Add(tx.Amount)
		case models.TransactionTypeIncome:
			timeline[idx].IncomeSum = timeline[idx].IncomeSum.Add(tx.Amount)
		}
	}

	return timeline
}
