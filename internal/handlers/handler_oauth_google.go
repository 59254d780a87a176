package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/middleware"
	"github.com/planillasvb/planillas_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles the Google sign-in flow. It supports both
// the server-side redirect flow and the frontend-initiated ID token
// flow.
type GoogleOAuthHandler struct {
	googleOAuthService ports.GoogleOAuthSvcFacade
	userService        ports.UserSvcFacade
	tokenService       ports.TokenSvcFacade
	frontendBaseURL    string
	isProduction       bool
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(services *ports.ServiceContainer, cfg *config.Config) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		frontendBaseURL:    cfg.FrontendBaseURL,
		isProduction:       cfg.IsProduction,
	}
}

// registerGoogleOAuthRoutes sets up the public Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	h := NewGoogleOAuthHandler(services, cfg)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.RedirectToGoogle)
		google.GET("/callback", h.GoogleCallback)
		google.POST("/token", h.LoginWithIDToken)
	}
}

// RedirectToGoogle godoc
// @Summary Start Google sign-in
// @Description Sets a state cookie and redirects to Google's consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) RedirectToGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	// State cookie, 10 minutes, httpOnly. Secure in production only so
	// local development over http keeps working.
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetLoginURL(c.Request.Context(), state))
}

// GoogleCallback godoc
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, provisions or links
// @Description the user, and redirects to the frontend with the token.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) GoogleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.isProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	googleID, email, displayName, err := h.googleOAuthService.ExchangeAndVerify(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	token, err := h.loginGoogleUser(c, googleID, email, displayName)
	if err != nil {
		return // response already written
	}

	redirect := h.frontendBaseURL + "/auth/callback?token=" + url.QueryEscape(token)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// LoginWithIDToken godoc
// @Summary Google sign-in with an ID token
// @Description Verifies a Google ID token obtained client-side and
// @Description returns an application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param token body dto.GoogleCallbackRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/token [post]
func (h *GoogleOAuthHandler) LoginWithIDToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	googleID, email, displayName, err := h.googleOAuthService.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), googleID, email, displayName)
	if err != nil {
		logger.Error("Failed to find or create Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

// loginGoogleUser provisions or links the user and issues a token. On
// failure it writes the error response and returns a non-nil error.
func (h *GoogleOAuthHandler) loginGoogleUser(c *gin.Context, googleID, email, displayName string) (string, error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), googleID, email, displayName)
	if err != nil {
		logger.Error("Failed to find or create Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return "", err
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return "", err
	}
	return token, nil
}
