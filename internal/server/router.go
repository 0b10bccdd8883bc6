// Package server wires the gin router and runs it on a bound listener.
package server

import (
	"fmt"
	"net/http"

	"ai-cofounder/internal/config"
	"ai-cofounder/internal/features/advisor/application"
	advisor_http "ai-cofounder/internal/features/advisor/presentation/http"
	config_http "ai-cofounder/internal/features/config/presentation/http"
	"ai-cofounder/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the services the router exposes.
type Deps struct {
	AdvisorService   application.AdvisorService
	AppConfigService config.AppConfigService
	Logger           *zap.Logger
}

// NewRouter builds the gin engine with the page, panel and API routes.
func NewRouter(deps Deps) (*gin.Engine, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.GinLogger(logger), gin.Recovery())

	tmpl, err := advisor_http.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler := advisor_http.NewAdvisorHandler(deps.AdvisorService)
	r.GET("/", handler.IndexHandler)

	// Form posts re-render the page with the panel output
	panelGroup := r.Group("/panels")
	{
		panelGroup.POST("/role", handler.RolePanelHandler)
		panelGroup.POST("/builder", handler.BuilderPanelHandler)
		panelGroup.POST("/pitch", handler.PitchPanelHandler)
		panelGroup.POST("/motivation", handler.MotivationPanelHandler)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/roles", handler.RolesHandler)
		apiGroup.POST("/role", handler.AnalyzeRoleHandler)
		apiGroup.POST("/builder", handler.BuildIdeaHandler)
		apiGroup.POST("/pitch", handler.JudgePitchHandler)
		apiGroup.POST("/motivation", handler.MotivateHandler)
		if deps.AppConfigService != nil {
			apiGroup.GET("/config", config_http.NewAppConfigHandler(deps.AppConfigService).GetAppConfigHandler)
		}
	}

	return r, nil
}
