package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the fee dashboard.
type reportingHandler struct {
	reportingService ports.ReportingSvcFacade
}

func newReportingHandler(rs ports.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService ports.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.getDailyTotals)
	}
}

// getDailyTotals godoc
// @Summary Daily fee totals
// @Description Per-day count of games with charged and collected fee
// @Description totals in USD. Defaults to the last 30 days.
// @Tags reports
// @Produce  json
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyTotalsResponse
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now().UTC().Truncate(24 * time.Hour)
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not be before 'from'"})
		return
	}

	report, err := h.reportingService.DailyTotals(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute daily totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
