package handlers

import (
	"net/http"

	"github.com/alligatorO15/fin-dashboard/internal/api/middleware"
	"github.com/alligatorO15/fin-dashboard/internal/config"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	refreshTokenCookie = "refresh_token"
	refreshTokenPath   = "/api/v1/auth"
)

type AuthHandler struct {
	authService service.AuthService
	config      *config.Config
}

func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	response.RefreshToken = "" // refresh живет только в cookie

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input models.UserLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	response.RefreshToken = ""

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token not found"})
		return
	}

	response, err := h.authService.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshTokenCookie(c)
		respondError(c, err)
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	response.RefreshToken = ""

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err == nil && refreshToken != "" {
		_ = h.authService.Logout(c.Request.Context(), refreshToken)
	}

	h.clearRefreshTokenCookie(c)

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.authService.LogoutAll(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearRefreshTokenCookie(c)

	c.JSON(http.StatusOK, gin.H{"message": "logged out from all devices"})
}

// httpOnly cookie, в production только по https
func (h *AuthHandler) setRefreshTokenCookie(c *gin.Context, token string) {
	secure := h.config.Env == "production"
	maxAge := int(h.config.RefreshTokenExpiration.Seconds())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, token, maxAge, refreshTokenPath, "", secure, true)
}

func (h *AuthHandler) clearRefreshTokenCookie(c *gin.Context) {
	secure := h.config.Env == "production"

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, "", -1, refreshTokenPath, "", secure, true)
}
