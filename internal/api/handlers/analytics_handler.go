package handlers

import (
	"net/http"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/api/middleware"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/gin-gonic/gin"
)

// maxCustomRange предел длины custom периода, ось строится по бакету на день
const maxCustomRange = 3 * 366 * 24 * time.Hour

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSnapshot ?period=day|week|month|quarter|custom&start_date=&end_date=
func (h *AnalyticsHandler) GetSnapshot(c *gin.Context) {
	sel, ok := parseSelector(c)
	if !ok {
		return
	}

	snapshot, err := h.analyticsService.GetSnapshot(c.Request.Context(), middleware.GetUserID(c), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *AnalyticsHandler) GetCategoryTrends(c *gin.Context) {
	trends, err := h.analyticsService.GetCategoryTrends(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category_trends": trends})
}

func (h *AnalyticsHandler) GetRecurring(c *gin.Context) {
	patterns, err := h.analyticsService.GetRecurring(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recurring_patterns": patterns})
}

func (h *AnalyticsHandler) GetAnomalies(c *gin.Context) {
	sel, ok := parseSelector(c)
	if !ok {
		return
	}

	anomalies, err := h.analyticsService.GetAnomalies(c.Request.Context(), middleware.GetUserID(c), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"anomalies": anomalies})
}

func (h *AnalyticsHandler) GetPredictions(c *gin.Context) {
	prediction, err := h.analyticsService.GetPredictions(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": prediction})
}

func parseSelector(c *gin.Context) (models.PeriodSelector, bool) {
	sel := models.PeriodSelector{Period: models.Period(c.DefaultQuery("period", string(models.PeriodMonth)))}
	if !sel.Period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidPeriod.Error()})
		return sel, false
	}

	var ok bool
	if sel.StartDate, ok = parseDateQuery(c, "start_date"); !ok {
		return sel, false
	}
	if sel.EndDate, ok = parseDateQuery(c, "end_date"); !ok {
		return sel, false
	}

	if sel.Period == models.PeriodCustom && (sel.StartDate == nil || sel.EndDate == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "custom period requires start_date and end_date"})
		return sel, false
	}
	if sel.Period == models.PeriodCustom && sel.EndDate.Sub(*sel.StartDate) > maxCustomRange {
		c.JSON(http.StatusBadRequest, gin.H{"error": "custom period is too long"})
		return sel, false
	}
	return sel, true
}
