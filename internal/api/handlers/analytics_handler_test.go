package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAnalyticsRouter(t *testing.T, userID uuid.UUID) (*service.MockAnalyticsService, http.Handler) {
	svc := service.NewMockAnalyticsService(gomock.NewController(t))
	h := NewAnalyticsHandler(svc)

	r := newRouter(userID)
	r.GET("/analytics/snapshot", h.GetSnapshot)
	r.GET("/analytics/category-trends", h.GetCategoryTrends)
	r.GET("/analytics/recurring", h.GetRecurring)
	r.GET("/analytics/anomalies", h.GetAnomalies)
	r.GET("/analytics/predictions", h.GetPredictions)
	return svc, r
}

func TestGetSnapshotDefaultsToMonth(t *testing.T) {
	userID := uuid.New()
	svc, r := newAnalyticsRouter(t, userID)

	svc.EXPECT().
		GetSnapshot(gomock.Any(), userID, models.PeriodSelector{Period: models.PeriodMonth}).
		Return(&models.AnalyticsSnapshot{Period: models.PeriodMonth, TotalExpenses: decimal.NewFromInt(1500)}, nil)

	w := doRequest(t, r, http.MethodGet, "/analytics/snapshot", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "month", body["period"])
	assert.Equal(t, "1500", body["total_expenses"])
}

func TestGetSnapshotCustomRange(t *testing.T) {
	userID := uuid.New()
	svc, r := newAnalyticsRouter(t, userID)

	svc.EXPECT().GetSnapshot(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, sel models.PeriodSelector) (*models.AnalyticsSnapshot, error) {
			assert.Equal(t, models.PeriodCustom, sel.Period)
			require.NotNil(t, sel.StartDate)
			require.NotNil(t, sel.EndDate)
			assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *sel.StartDate)
			assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), *sel.EndDate)
			return &models.AnalyticsSnapshot{Period: models.PeriodCustom}, nil
		})

	w := doRequest(t, r, http.MethodGet, "/analytics/snapshot?period=custom&start_date=2026-09-01&end_date=2026-09-30", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSnapshotBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unknown period", "/analytics/snapshot?period=year"},
		{"malformed date", "/analytics/snapshot?period=custom&start_date=01/09/2026&end_date=2026-09-30"},
		{"custom without end", "/analytics/snapshot?period=custom&start_date=2026-09-01"},
		{"custom range too long", "/analytics/snapshot?period=custom&start_date=0001-01-01&end_date=9999-12-31"},
		{"custom range just over the limit", "/analytics/snapshot?period=custom&start_date=2023-01-01&end_date=2026-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := newAnalyticsRouter(t, uuid.New())

			w := doRequest(t, r, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
}

func TestGetSnapshotCustomRangeLimits(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"three years", "2023-10-01", "2026-10-01"},
		{"end before start gives an empty timeline", "2026-09-30", "2026-09-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			svc, r := newAnalyticsRouter(t, userID)

			svc.EXPECT().GetSnapshot(gomock.Any(), userID, gomock.Any()).Return(&models.AnalyticsSnapshot{}, nil)

			w := doRequest(t, r, http.MethodGet, "/analytics/snapshot?period=custom&start_date="+tt.start+"&end_date="+tt.end, nil)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestGetSnapshotInternalError(t *testing.T) {
	userID := uuid.New()
	svc, r := newAnalyticsRouter(t, userID)

	svc.EXPECT().GetSnapshot(gomock.Any(), userID, gomock.Any()).Return(nil, assert.AnError)

	w := doRequest(t, r, http.MethodGet, "/analytics/snapshot?period=week", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w))
}

func TestAnalyticsFacets(t *testing.T) {
	userID := uuid.New()
	svc, r := newAnalyticsRouter(t, userID)

	svc.EXPECT().GetCategoryTrends(gomock.Any(), userID).Return([]models.CategoryTrend{{Category: "Comida", ChangeType: models.ChangeNew}}, nil)
	svc.EXPECT().GetRecurring(gomock.Any(), userID).Return([]models.RecurringPattern{{Description: "netflix", FrequencyLabel: "Monthly"}}, nil)
	svc.EXPECT().GetAnomalies(gomock.Any(), userID, models.PeriodSelector{Period: models.PeriodQuarter}).Return(nil, nil)
	svc.EXPECT().GetPredictions(gomock.Any(), userID).Return(&models.Prediction{DaysRemaining: 17}, nil)

	w := doRequest(t, r, http.MethodGet, "/analytics/category-trends", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"change_type":"new"`)

	w = doRequest(t, r, http.MethodGet, "/analytics/recurring", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"frequency_label":"Monthly"`)

	w = doRequest(t, r, http.MethodGet, "/analytics/anomalies?period=quarter", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/analytics/predictions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"days_remaining":17`)
}
