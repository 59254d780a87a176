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

// courtHandler handles HTTP requests for the court catalog.
type courtHandler struct {
	courtService ports.CourtSvcFacade
}

func newCourtHandler(cs ports.CourtSvcFacade) *courtHandler {
	return &courtHandler{courtService: cs}
}

// registerCourtRoutes registers routes related to courts.
func registerCourtRoutes(rg *gin.RouterGroup, courtService ports.CourtSvcFacade) {
	h := newCourtHandler(courtService)

	courts := rg.Group("/courts")
	{
		courts.POST("", h.createCourt)
		courts.GET("", h.listCourts)
		courts.GET("/:courtID", h.getCourt)
		courts.PUT("/:courtID", h.updateCourt)
	}
}

// createCourt godoc
// @Summary Register a court
// @Tags courts
// @Accept  json
// @Produce  json
// @Param   court body dto.CreateCourtRequest true "Court details"
// @Success 201 {object} dto.CourtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /courts [post]
func (h *courtHandler) createCourt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCourt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.courtService.CreateCourt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create court", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create court"})
		}
		return
	}

	logger.Info("Court created", slog.String("court_id", created.CourtID))
	c.JSON(http.StatusCreated, dto.ToCourtResponse(created))
}

// listCourts godoc
// @Summary List courts
// @Tags courts
// @Produce  json
// @Success 200 {array} dto.CourtResponse
// @Security BearerAuth
// @Router /courts [get]
func (h *courtHandler) listCourts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courts, err := h.courtService.ListCourts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list courts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCourtResponse(courts))
}

// getCourt godoc
// @Summary Get a court
// @Tags courts
// @Produce  json
// @Param   courtID path string true "Court ID"
// @Success 200 {object} dto.CourtResponse
// @Failure 404 {object} map[string]string "Court not found"
// @Security BearerAuth
// @Router /courts/{courtID} [get]
func (h *courtHandler) getCourt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courtID := c.Param("courtID")

	court, err := h.courtService.GetCourtByID(c.Request.Context(), courtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
		} else {
			logger.Error("Failed to get court", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve court"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

// updateCourt godoc
// @Summary Update a court
// @Tags courts
// @Accept  json
// @Produce  json
// @Param   courtID path string true "Court ID"
// @Param   court body dto.UpdateCourtRequest true "Court details"
// @Success 200 {object} dto.CourtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Court not found"
// @Security BearerAuth
// @Router /courts/{courtID} [put]
func (h *courtHandler) updateCourt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courtID := c.Param("courtID")

	var req dto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCourt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.courtService.UpdateCourt(c.Request.Context(), courtID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update court", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update court"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCourtResponse(updated))
}
