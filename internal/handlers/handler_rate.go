package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler serves the cached VES/USD exchange rate.
type rateHandler struct {
	rateService ports.RateSvcFacade
}

func newRateHandler(rs ports.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers the exchange-rate route.
func registerRateRoutes(rg *gin.RouterGroup, rateService ports.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/local", h.getLocalRate)
	}
}

// getLocalRate godoc
// @Summary Get the VES/USD exchange rate
// @Description Returns the cached rate, refreshing it when older than
// @Description the cache TTL. A stale rate is served when the upstream
// @Description API is unreachable; 503 only when no rate was ever
// @Description cached.
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateResponse
// @Failure 503 {object} map[string]string "Exchange rate unavailable"
// @Security BearerAuth
// @Router /rates/local [get]
func (h *rateHandler) getLocalRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.rateService.GetRate(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			logger.Warn("Exchange rate unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rate unavailable"})
		} else {
			logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}
