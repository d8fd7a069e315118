package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period определяет временные интервалы для дашборда
type Period string

const (
	PeriodDay     Period = "day"     // с начала текущего дня, по часам
	PeriodWeek    Period = "week"    // последние 7 календарных дней, по дням
	PeriodMonth   Period = "month"   // текущий календарный месяц целиком, по дням
	PeriodQuarter Period = "quarter" // последние 90 дней, по месяцам
	PeriodCustom  Period = "custom"  // произвольный диапазон (включительно), по дням
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodCustom:
		return true
	}
	return false
}

// Granularity размер одного бакета на временной оси
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// PeriodSelector то что приходит от UI
type PeriodSelector struct {
	Period    Period     `json:"period"`
	StartDate *time.Time `json:"start_date,omitempty"` // только для custom
	EndDate   *time.Time `json:"end_date,omitempty"`   // только для custom
}

// DateRange конкретный диапазон периода.
// Транзакции фильтруются по [Start, End], ось таймлайна строится по [Start, AxisEnd]
// (для месяца AxisEnd = последний день месяца, будущие дни идут нулями)
type DateRange struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	AxisEnd     time.Time   `json:"axis_end"`
	Granularity Granularity `json:"granularity"`
}

// NamedTotal сумма расходов по категории или банку
type NamedTotal struct {
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"` // доля от всех расходов в %
}

// TimelineBucket один слот временной оси
type TimelineBucket struct {
	Label      string          `json:"label"`      // короткая подпись для оси
	FullLabel  string          `json:"full_label"` // подпись для тултипа
	Start      time.Time       `json:"start"`
	ExpenseSum decimal.Decimal `json:"expense_sum"`
	IncomeSum  decimal.Decimal `json:"income_sum"`
}

// Trends изменение второй половины таймлайна относительно первой, в %
type Trends struct {
	ExpenseTrendPct decimal.Decimal `json:"expense_trend_pct"`
	IncomeTrendPct  decimal.Decimal `json:"income_trend_pct"`
}

type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNew      ChangeType = "new"
	ChangeStable   ChangeType = "stable"
)

// CategoryTrend сравнение текущего месяца с прошлым по категории
type CategoryTrend struct {
	Category       string          `json:"category"`
	CurrentAmount  decimal.Decimal `json:"current_amount"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	ChangePercent  decimal.Decimal `json:"change_percent"`
	ChangeType     ChangeType      `json:"change_type"`
}

// RecurringPattern группа похожих платежей за последние 30 дней
type RecurringPattern struct {
	Description            string          `json:"description"`
	Category               string          `json:"category"`
	AverageAmount          decimal.Decimal `json:"average_amount"`
	FrequencyLabel         string          `json:"frequency_label"`
	OccurrenceCount        int             `json:"occurrence_count"`
	Bank                   string          `json:"bank"`
	AverageIntervalDays    float64         `json:"average_interval_days"`
	EstimatedMonthlyImpact decimal.Decimal `json:"estimated_monthly_impact"`
}

type PeriodTotals struct {
	Start    time.Time       `json:"start"`
	End      time.Time       `json:"end"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

type PeriodDeltas struct {
	ExpenseChange    decimal.Decimal `json:"expense_change"`
	ExpenseChangePct decimal.Decimal `json:"expense_change_pct"`
	IncomeChange     decimal.Decimal `json:"income_change"`
	IncomeChangePct  decimal.Decimal `json:"income_change_pct"`
}

type CategoryDelta struct {
	Category         string          `json:"category"`
	Current          decimal.Decimal `json:"current"`
	Previous         decimal.Decimal `json:"previous"`
	AbsoluteChange   decimal.Decimal `json:"absolute_change"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// PeriodComparison сравнение с предыдущим периодом той же длины
type PeriodComparison struct {
	PreviousTotals PeriodTotals    `json:"previous_totals"`
	Deltas         PeriodDeltas    `json:"deltas"`
	CategoryDeltas []CategoryDelta `json:"category_deltas"`
}

// Anomaly расход, который выбивается выше mean + 2σ
type Anomaly struct {
	Transaction     Transaction `json:"transaction"`
	DeviationFactor float64     `json:"deviation_factor"`
	Category        string      `json:"category"`
}

// Prediction линейная экстраполяция расходов до конца месяца
type Prediction struct {
	CurrentTotal       decimal.Decimal `json:"current_total"`
	PredictedTotal     decimal.Decimal `json:"predicted_total"`
	PredictedRemaining decimal.Decimal `json:"predicted_remaining"`
	DailyAverage       decimal.Decimal `json:"daily_average"`
	DaysRemaining      int             `json:"days_remaining"`
	ProgressPct        decimal.Decimal `json:"progress_pct"`
}

type WeekdayPattern struct {
	Day     time.Weekday    `json:"day"`
	DayName string          `json:"day_name"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

type DaySpend struct {
	Label     string          `json:"label"`
	FullLabel string          `json:"full_label"`
	Amount    decimal.Decimal `json:"amount"`
}

type EfficiencyAnalysis struct {
	BestDays          []DaySpend      `json:"best_days"`
	WorstDays         []DaySpend      `json:"worst_days"`
	AverageDailySpend decimal.Decimal `json:"average_daily_spend"`
}

// Correlation пара категорий, которые встречаются в один день
type Correlation struct {
	CategoryA         string  `json:"category_a"`
	CategoryB         string  `json:"category_b"`
	CoOccurrenceCount int     `json:"co_occurrence_count"`
	Strength          float64 `json:"strength"`
}

// AnalyticsSnapshot всё, что рисует дашборд. Пересчитывается на каждый запрос
type AnalyticsSnapshot struct {
	Period             Period              `json:"period"`
	Range              DateRange           `json:"range"`
	TotalExpenses      decimal.Decimal     `json:"total_expenses"`
	TotalIncome        decimal.Decimal     `json:"total_income"`
	Balance            decimal.Decimal     `json:"balance"`
	TransactionCount   int                 `json:"transaction_count"`
	CategoryTotals     []NamedTotal        `json:"category_totals"`
	BankTotals         []NamedTotal        `json:"bank_totals"`
	Timeline           []TimelineBucket    `json:"timeline"`
	Trends             Trends              `json:"trends"`
	CategoryTrends     []CategoryTrend     `json:"category_trends"`
	RecurringPatterns  []RecurringPattern  `json:"recurring_patterns"`
	PeriodComparison   *PeriodComparison   `json:"period_comparison,omitempty"`
	Anomalies          []Anomaly           `json:"anomalies"`
	Predictions        *Prediction         `json:"predictions,omitempty"`
	WeeklyPatterns     []WeekdayPattern    `json:"weekly_patterns"`
	EfficiencyAnalysis *EfficiencyAnalysis `json:"efficiency_analysis,omitempty"`
	Correlations       []Correlation       `json:"correlations"`
}
