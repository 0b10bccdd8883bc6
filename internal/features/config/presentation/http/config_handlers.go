package http

import (
	"net/http"

	"ai-cofounder/internal/config"

	"github.com/gin-gonic/gin"
)

// AppConfigHandler holds the app config service.
type AppConfigHandler struct {
	appConfigService config.AppConfigService
}

// NewAppConfigHandler creates a new AppConfigHandler.
func NewAppConfigHandler(appConfigService config.AppConfigService) *AppConfigHandler {
	return &AppConfigHandler{
		appConfigService: appConfigService,
	}
}

// GetAppConfigHandler returns the effective configuration. The API key is never included.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, appConfig)
}
