package http

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"ai-cofounder/internal/features/advisor/application"
	"ai-cofounder/internal/features/advisor/domain"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the name of the page rendered by the panel handlers.
const PageTemplate = "index.html"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// AdvisorHandler holds the advisor service.
type AdvisorHandler struct {
	advisorService application.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService application.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// pageData is the state of the four panels on one render.
type pageData struct {
	Roles  []domain.Role
	Active domain.Panel

	Role       domain.Role
	Idea       string
	RoleOutput string

	Fields        domain.IdeaFields
	BuilderOutput string

	Pitch       string
	PitchOutput string

	Challenge        string
	MotivationOutput string
}

func newPageData() pageData {
	return pageData{Roles: domain.Roles(), Role: domain.DefaultRole()}
}

func resolveRole(name string) domain.Role {
	if strings.TrimSpace(name) == "" {
		return domain.DefaultRole()
	}
	return domain.Role(name)
}

// IndexHandler renders the empty page.
func (h *AdvisorHandler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, PageTemplate, newPageData())
}

// RolePanelHandler handles the role analysis form post.
func (h *AdvisorHandler) RolePanelHandler(c *gin.Context) {
	var req domain.RoleAnalysisRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	data := newPageData()
	data.Active = domain.PanelRole
	data.Role = resolveRole(req.Role)
	data.Idea = req.Idea
	data.RoleOutput = h.advisorService.AnalyzeRole(c.Request.Context(), data.Role, req.Idea)
	c.HTML(http.StatusOK, PageTemplate, data)
}

// BuilderPanelHandler handles the structured idea builder form post.
func (h *AdvisorHandler) BuilderPanelHandler(c *gin.Context) {
	var fields domain.IdeaFields
	if err := c.ShouldBind(&fields); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	data := newPageData()
	data.Active = domain.PanelBuilder
	data.Fields = fields
	data.BuilderOutput = h.advisorService.BuildIdea(c.Request.Context(), fields)
	c.HTML(http.StatusOK, PageTemplate, data)
}

// PitchPanelHandler handles the pitch judge form post.
func (h *AdvisorHandler) PitchPanelHandler(c *gin.Context) {
	var req domain.PitchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	data := newPageData()
	data.Active = domain.PanelPitch
	data.Pitch = req.Pitch
	data.PitchOutput = h.advisorService.JudgePitch(c.Request.Context(), req.Pitch)
	c.HTML(http.StatusOK, PageTemplate, data)
}

// MotivationPanelHandler handles the motivation form post.
func (h *AdvisorHandler) MotivationPanelHandler(c *gin.Context) {
	var req domain.MotivationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	data := newPageData()
	data.Active = domain.PanelMotivation
	data.Challenge = req.Challenge
	data.MotivationOutput = h.advisorService.Motivate(c.Request.Context(), req.Challenge)
	c.HTML(http.StatusOK, PageTemplate, data)
}

// AnalyzeRoleHandler is the JSON variant of the role analysis panel.
func (h *AdvisorHandler) AnalyzeRoleHandler(c *gin.Context) {
	var req domain.RoleAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := h.advisorService.AnalyzeRole(c.Request.Context(), resolveRole(req.Role), req.Idea)
	c.JSON(http.StatusOK, domain.PanelResponse{Output: out})
}

// BuildIdeaHandler is the JSON variant of the idea builder panel.
func (h *AdvisorHandler) BuildIdeaHandler(c *gin.Context) {
	var fields domain.IdeaFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := h.advisorService.BuildIdea(c.Request.Context(), fields)
	c.JSON(http.StatusOK, domain.PanelResponse{Output: out})
}

// JudgePitchHandler is the JSON variant of the pitch judge panel.
func (h *AdvisorHandler) JudgePitchHandler(c *gin.Context) {
	var req domain.PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := h.advisorService.JudgePitch(c.Request.Context(), req.Pitch)
	c.JSON(http.StatusOK, domain.PanelResponse{Output: out})
}

// MotivateHandler is the JSON variant of the motivation panel.
func (h *AdvisorHandler) MotivateHandler(c *gin.Context) {
	var req domain.MotivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := h.advisorService.Motivate(c.Request.Context(), req.Challenge)
	c.JSON(http.StatusOK, domain.PanelResponse{Output: out})
}

// RolesHandler lists the selectable roles in presentation order.
func (h *AdvisorHandler) RolesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, domain.RolesResponse{Roles: domain.Roles(), Default: domain.DefaultRole()})
}
