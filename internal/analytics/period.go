package analytics

import (
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
)

// dayStart первый реальный момент календарной даты в loc. Переполнение дня и месяца
// нормализуется как у time.Date. Если полночь попала в перевод часов, time.Date
// уезжает в предыдущие сутки, тогда берем момент перехода
func dayStart(y int, m time.Month, d int, loc *time.Location) time.Time {
	y, m, d = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if civil(t.Date()) < civil(y, m, d) {
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end
		}
	} else if t.Hour() != 0 || t.Minute() != 0 {
		if start, _ := t.ZoneBounds(); !start.IsZero() && civil(start.Date()) == civil(y, m, d) {
			t = start
		}
	}
	return t
}

// civil порядковый ключ календарной даты, сравнивается как число
func civil(y int, m time.Month, d int) int {
	return y*10000 + int(m)*100 + d
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return dayStart(t.Year(), t.Month(), 1, t.Location())
}

// addDays начало дня через n календарных дней от даты t
func addDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d+n, t.Location())
}

// addMonths начало месяца через n месяцев от месяца t
func addMonths(t time.Time, n int) time.Time {
	return dayStart(t.Year(), t.Month()+time.Month(n), 1, t.Location())
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d, loc)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ResolveRange превращает селектор периода в конкретный диапазон и гранулярность.
// Все границы считаются в локации now
func ResolveRange(sel models.PeriodSelector, now time.Time) models.DateRange {
	today := startOfDay(now)

	switch sel.Period {
	case models.PeriodDay:
		return models.DateRange{Start: today, End: now, AxisEnd: now, Granularity: models.GranularityHour}
	case models.PeriodWeek:
		return models.DateRange{Start: addDays(today, -6), End: now, AxisEnd: now, Granularity: models.GranularityDay}
	case models.PeriodQuarter:
		return models.DateRange{Start: addDays(today, -89), End: now, AxisEnd: now, Granularity: models.GranularityMonth}
	case models.PeriodCustom:
		return customRange(sel, now)
	default:
		// месяц: ось на весь месяц, чтобы у прогноза была полная шкала
		monthStart := startOfMonth(now)
		lastDay := dayStart(now.Year(), now.Month()+1, 0, now.Location())
		return models.DateRange{Start: monthStart, End: now, AxisEnd: lastDay, Granularity: models.GranularityDay}
	}
}

// customRange включительный диапазон по дням. end < start не ошибка: ось получится пустой.
// Даты селектора календарные: берется год, месяц и день как есть, без перевода в локацию now
func customRange(sel models.PeriodSelector, now time.Time) models.DateRange {
	loc := now.Location()
	start := startOfDay(now)
	lastDay := start
	if sel.StartDate != nil {
		start = calendarDay(*sel.StartDate, loc)
	}
	if sel.EndDate != nil {
		lastDay = calendarDay(*sel.EndDate, loc)
	}
	return models.DateRange{
		Start:       start,
		End:         addDays(lastDay, 1).Add(-time.Nanosecond),
		AxisEnd:     lastDay,
		Granularity: models.GranularityDay,
	}
}

// PreviousRange диапазон той же длины сразу перед r.Start, полуоткрытый [start, end)
func PreviousRange(r models.DateRange) (time.Time, time.Time) {
	length := r.End.Sub(r.Start)
	return r.Start.Add(-length), r.Start
}

// FilterRange транзакции с датой в [r.Start, r.End]
func FilterRange(txs []models.Transaction, r models.DateRange) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Before(r.Start) || tx.Date.After(r.End) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// between транзакции с датой в [from, to)
func between(txs []models.Transaction, from, to time.Time) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.Date.Before(from) || !tx.Date.Before(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func expenses(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsExpense() {
			out = append(out, tx)
		}
	}
	return out
}
