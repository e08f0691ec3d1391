package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/markdown"
	"github.com/Zachkp/portfolio/internal/mcp"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/ui"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// app carries everything the handlers share.
type app struct {
	cfg        *config.Config
	portfolio  *content.Portfolio
	md         *markdown.Renderer
	mailer     contact.Mailer
	visits     *analytics.Store
	metrics    *metrics.Collector
	clock      ui.Clock
	logger     *slog.Logger
	adminToken string
	version    string
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func newRouter(a *app, registry *prometheus.Registry) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(a.logger))
	if a.visits != nil {
		r.Use(a.visitorTracking())
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	// Pages
	r.GET("/", a.home)
	r.GET("/resume", a.resumePage)
	r.GET("/privacy", a.privacyPage)
	r.GET("/images/profile", a.profileImage)

	// HTMX fragments
	r.GET("/fragments/experience", a.experienceFragment)
	r.GET("/fragments/skills", a.skillsFragment)
	r.GET("/fragments/projects/:id", a.projectFragment)
	r.GET("/hero/typing", a.typing)
	r.GET("/contact-form", a.contactForm)
	r.POST("/contact", a.submitContact)

	// JSON API
	api := r.Group("/api")
	if len(a.cfg.CORSOrigins) > 0 {
		api.Use(corsMiddleware(a.cfg.CORSOrigins))
	}
	api.GET("/health", a.health)
	api.GET("/projects", a.listProjects)
	api.GET("/projects/:id", a.getProject)
	api.GET("/skills", a.listSkills)
	api.GET("/skills/categories", a.listCategories)
	api.GET("/experience", a.listEntries(content.ViewExperience))
	api.GET("/education", a.listEntries(content.ViewEducation))

	// MCP uses POST for requests, GET for the SSE stream and DELETE to end a session.
	mcpHTTP := gin.WrapH(server.NewStreamableHTTPServer(mcp.NewServer(a.portfolio, a.version)))
	r.POST("/mcp", mcpHTTP)
	r.GET("/mcp", mcpHTTP)
	r.DELETE("/mcp", mcpHTTP)

	if registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	if a.cfg.AdminEnabled() && a.visits != nil {
		a.setupAdminRoutes(r)
	}

	return r, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

// requestLogger logs one line per request. Client addresses are left out.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}

func (a *app) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": a.version,
	})
}
