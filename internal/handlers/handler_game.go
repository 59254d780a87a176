package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/middleware"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/planillasvb/planillas_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// gameHandler handles HTTP requests for games and their fee sheets.
// The rate service is used to decorate USD amounts with their local
// currency display; rate failures never fail a game request.
type gameHandler struct {
	gameService ports.GameSvcFacade
	rateService ports.RateSvcFacade
}

func newGameHandler(gs ports.GameSvcFacade, rs ports.RateSvcFacade) *gameHandler {
	return &gameHandler{gameService: gs, rateService: rs}
}

// registerGameRoutes registers routes related to games.
func registerGameRoutes(rg *gin.RouterGroup, gameService ports.GameSvcFacade, rateService ports.RateSvcFacade) {
	h := newGameHandler(gameService, rateService)

	games := rg.Group("/games")
	{
		games.POST("", h.createGame)
		games.GET("", h.listGames)
		games.GET("/:gameID", h.getGame)
		games.PUT("/:gameID", h.updateGame)
		games.PUT("/:gameID/status", h.updateGameStatus)
		games.PUT("/:gameID/payments/:team", h.applyPaymentChange)
		games.DELETE("/:gameID", h.deleteGame)
	}
}

// gameResponseWithRate fills the display fields of the response's
// TotalCost. The VES line is omitted when no rate is available.
func (h *gameHandler) gameResponseWithRate(c *gin.Context, game *models.Game) dto.GameResponse {
	res := dto.ToGameResponse(game)
	res.TotalCost.USDDisplay = utils.FormatUSD(game.TotalCost)

	rate, err := h.rateService.GetRate(c.Request.Context())
	if err == nil {
		res.TotalCost.VESDisplay = utils.FormatVES(utils.ConvertToLocal(game.TotalCost, rate))
	}
	return res
}

func parseTeamParam(raw string) (models.Team, bool) {
	switch strings.ToUpper(raw) {
	case "A":
		return models.TeamA, true
	case "B":
		return models.TeamB, true
	}
	return "", false
}

// createGame godoc
// @Summary Schedule a game
// @Description Creates a game with a fee sheet; the total cost is the
// @Description category's per-team fee times two
// @Tags games
// @Accept  json
// @Produce  json
// @Param   game body dto.CreateGameRequest true "Game details"
// @Success 201 {object} dto.GameResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /games [post]
func (h *gameHandler) createGame(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGame", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.gameService.CreateGame(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create game", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		}
		return
	}

	logger.Info("Game created", slog.String("game_id", created.GameID))
	c.JSON(http.StatusCreated, h.gameResponseWithRate(c, created))
}

// listGames godoc
// @Summary List games
// @Description Lists games newest first, optionally filtered by court
// @Description and date range (YYYY-MM-DD, inclusive)
// @Tags games
// @Produce  json
// @Param   courtID query string false "Court ID"
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.GameResponse
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Security BearerAuth
// @Router /games [get]
func (h *gameHandler) listGames(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = &t
	}

	games, err := h.gameService.ListGames(c.Request.Context(), c.Query("courtID"), from, to)
	if err != nil {
		logger.Error("Failed to list games", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list games"})
		return
	}

	// Fetch the rate once for the whole list; it is served from cache.
	rate, rateErr := h.rateService.GetRate(c.Request.Context())

	res := make([]dto.GameResponse, len(games))
	for i := range games {
		res[i] = dto.ToGameResponse(&games[i])
		res[i].TotalCost.USDDisplay = utils.FormatUSD(games[i].TotalCost)
		if rateErr == nil {
			res[i].TotalCost.VESDisplay = utils.FormatVES(utils.ConvertToLocal(games[i].TotalCost, rate))
		}
	}
	c.JSON(http.StatusOK, res)
}

// getGame godoc
// @Summary Get a game
// @Tags games
// @Produce  json
// @Param   gameID path string true "Game ID"
// @Success 200 {object} dto.GameResponse
// @Failure 404 {object} map[string]string "Game not found"
// @Security BearerAuth
// @Router /games/{gameID} [get]
func (h *gameHandler) getGame(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gameID := c.Param("gameID")

	game, err := h.gameService.GetGameByID(c.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		} else {
			logger.Error("Failed to get game", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		}
		return
	}
	c.JSON(http.StatusOK, h.gameResponseWithRate(c, game))
}

// updateGame godoc
// @Summary Update a game's schedule
// @Tags games
// @Accept  json
// @Produce  json
// @Param   gameID path string true "Game ID"
// @Param   game body dto.UpdateGameRequest true "Game details"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Game not found"
// @Security BearerAuth
// @Router /games/{gameID} [put]
func (h *gameHandler) updateGame(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gameID := c.Param("gameID")

	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateGame", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.gameService.UpdateGame(c.Request.Context(), gameID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update game", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		}
		return
	}
	c.JSON(http.StatusOK, h.gameResponseWithRate(c, updated))
}

// updateGameStatus godoc
// @Summary Set a game's status
// @Description Manual status transition, e.g. cancelling a game
// @Tags games
// @Accept  json
// @Produce  json
// @Param   gameID path string true "Game ID"
// @Param   status body dto.UpdateGameStatusRequest true "New status"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Game not found"
// @Security BearerAuth
// @Router /games/{gameID}/status [put]
func (h *gameHandler) updateGameStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gameID := c.Param("gameID")

	var req dto.UpdateGameStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateGameStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.gameService.UpdateGameStatus(c.Request.Context(), gameID, req.Status, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update game status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game status"})
		}
		return
	}
	c.JSON(http.StatusOK, h.gameResponseWithRate(c, updated))
}

// applyPaymentChange godoc
// @Summary Change a team's payment state
// @Description Marks one team's share paid or unpaid. A payment
// @Description reference may only accompany paid=true. The game status
// @Description is derived from the resulting flags.
// @Tags games
// @Accept  json
// @Produce  json
// @Param   gameID path string true "Game ID"
// @Param   team path string true "Team side (A or B)"
// @Param   payment body dto.PaymentChangeRequest true "Payment change"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Game not found"
// @Failure 409 {object} map[string]string "Game was modified concurrently"
// @Security BearerAuth
// @Router /games/{gameID}/payments/{team} [put]
func (h *gameHandler) applyPaymentChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gameID := c.Param("gameID")

	team, ok := parseTeamParam(c.Param("team"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Team must be 'A' or 'B'"})
		return
	}

	var req dto.PaymentChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for applyPaymentChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("game_id", gameID), slog.String("team", string(team)))
	logger.Info("Received payment change", slog.Bool("paid", *req.Paid))

	updated, err := h.gameService.ApplyPaymentChange(c.Request.Context(), gameID, team, *req.Paid, req.Reference, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Game was modified concurrently, retry with fresh data"})
		default:
			logger.Error("Failed to apply payment change", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply payment change"})
		}
		return
	}

	logger.Info("Payment change applied", slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, h.gameResponseWithRate(c, updated))
}

// deleteGame godoc
// @Summary Delete a game
// @Tags games
// @Produce  json
// @Param   gameID path string true "Game ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Game not found"
// @Security BearerAuth
// @Router /games/{gameID} [delete]
func (h *gameHandler) deleteGame(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gameID := c.Param("gameID")

	if err := h.gameService.DeleteGame(c.Request.Context(), gameID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		} else {
			logger.Error("Failed to delete game", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
