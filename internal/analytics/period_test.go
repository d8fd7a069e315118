package analytics

import (
	"testing"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveRange(t *testing.T) {
	oct1 := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	oct10 := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		sel         models.PeriodSelector
		start       time.Time
		granularity models.Granularity
		buckets     int
	}{
		{
			name:        "day is hourly up to the current hour",
			sel:         models.PeriodSelector{Period: models.PeriodDay},
			start:       time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
			granularity: models.GranularityHour,
			buckets:     16,
		},
		{
			name:        "week is the last 7 calendar days",
			sel:         models.PeriodSelector{Period: models.PeriodWeek},
			start:       time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC),
			granularity: models.GranularityDay,
			buckets:     7,
		},
		{
			name:        "month covers the whole calendar month",
			sel:         models.PeriodSelector{Period: models.PeriodMonth},
			start:       oct1,
			granularity: models.GranularityDay,
			buckets:     31,
		},
		{
			name:        "quarter is the last 90 days by month",
			sel:         models.PeriodSelector{Period: models.PeriodQuarter},
			start:       time.Date(2026, 7, 17, 0, 0, 0, 0, time.UTC),
			granularity: models.GranularityMonth,
			buckets:     4,
		},
		{
			name:        "custom range is inclusive",
			sel:         models.PeriodSelector{Period: models.PeriodCustom, StartDate: &oct1, EndDate: &oct10},
			start:       oct1,
			granularity: models.GranularityDay,
			buckets:     10,
		},
		{
			name:        "custom range with end before start is empty",
			sel:         models.PeriodSelector{Period: models.PeriodCustom, StartDate: &oct10, EndDate: &oct1},
			start:       oct10,
			granularity: models.GranularityDay,
			buckets:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveRange(tt.sel, testNow)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.granularity, r.Granularity)
			assert.Len(t, BucketStarts(r), tt.buckets)
			assert.Len(t, BuildTimeline(nil, r), tt.buckets)
		})
	}
}

func TestCustomRangeIncludesWholeEndDay(t *testing.T) {
	oct1 := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	oct2 := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	r := ResolveRange(models.PeriodSelector{Period: models.PeriodCustom, StartDate: &oct1, EndDate: &oct2}, testNow)

	txs := []models.Transaction{
		expense(1, "late", time.Date(2026, 10, 2, 23, 59, 0, 0, time.UTC), nil),
		expense(1, "next day", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), nil),
		expense(1, "before", time.Date(2026, 9, 30, 23, 59, 0, 0, time.UTC), nil),
	}

	filtered := FilterRange(txs, r)
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, "late", filtered[0].Description)
	}
}

func TestPreviousRangeIsAdjacent(t *testing.T) {
	r := ResolveRange(models.PeriodSelector{Period: models.PeriodWeek}, testNow)
	prevStart, prevEnd := PreviousRange(r)

	assert.Equal(t, r.Start, prevEnd)
	assert.Equal(t, r.End.Sub(r.Start), prevEnd.Sub(prevStart))
}

func TestCustomRangeUsesCalendarDatesInEngineLocation(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	now := time.Date(2026, 10, 14, 10, 30, 0, 0, bogota)
	// даты из query приходят как полночь UTC
	sep1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sep30 := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	r := ResolveRange(models.PeriodSelector{Period: models.PeriodCustom, StartDate: &sep1, EndDate: &sep30}, now)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, bogota), r.Start)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, bogota), r.AxisEnd)
	assert.Len(t, BucketStarts(r), 30)
}

func TestDayStart(t *testing.T) {
	santiago := loadZone(t, "America/Santiago")
	ny := loadZone(t, "America/New_York")

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{
			name: "midnight skipped by clock change starts at the transition",
			got:  dayStart(2026, 9, 6, santiago),
			want: time.Date(2026, 9, 6, 4, 0, 0, 0, time.UTC),
		},
		{
			name: "ordinary midnight",
			got:  dayStart(2026, 9, 7, santiago),
			want: time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "change at 02:00 keeps midnight",
			got:  dayStart(2026, 3, 8, ny),
			want: time.Date(2026, 3, 8, 5, 0, 0, 0, time.UTC),
		},
		{
			name: "day overflow rolls into the next year",
			got:  dayStart(2026, 12, 32, time.UTC),
			want: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.got), "want %s, got %s", tt.want, tt.got)
		})
	}
}

func TestResolveRangeOnMidnightGapDay(t *testing.T) {
	santiago := loadZone(t, "America/Santiago")
	now := time.Date(2026, 9, 6, 12, 30, 0, 0, santiago)

	day := ResolveRange(models.PeriodSelector{Period: models.PeriodDay}, now)
	assert.Equal(t, 6, day.Start.Day())
	assert.Equal(t, 1, day.Start.Hour())
	// с 01:00 по 12:00
	assert.Len(t, BucketStarts(day), 12)

	sep6 := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	custom := ResolveRange(models.PeriodSelector{Period: models.PeriodCustom, StartDate: &sep6, EndDate: &sep6}, now)
	assert.Equal(t, day.Start, custom.Start)
	assert.True(t, custom.End.Before(time.Date(2026, 9, 7, 0, 0, 0, 0, santiago)))
	assert.Equal(t, 6, custom.End.Day())
	assert.Len(t, BucketStarts(custom), 1)
}

func TestMonthBoundariesInZoneWithMidnightGap(t *testing.T) {
	santiago := loadZone(t, "America/Santiago")
	now := time.Date(2026, 9, 20, 12, 0, 0, 0, santiago)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, santiago), addMonths(startOfMonth(now), 1))
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, santiago), addMonths(startOfMonth(now), -1))
	assert.Equal(t, 30, daysInMonth(now))
}
