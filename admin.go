// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// Paths that never count as a page view.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/fragments/",
	"/hero/",
	"/contact",
	"/metrics",
	"/mcp",
	"/api/health",
}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// visitorTracking records a hashed page view for every successful GET that
// is not excluded above. Requests sent with DNT: 1 are never recorded.
func (a *app) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 2*time.Second)
		defer cancel()
		if err := a.visits.Record(ctx, c.ClientIP(), c.GetHeader("User-Agent"), path); err != nil {
			a.logger.Error("error recording visitor", "error", err)
		}
	}
}

func (a *app) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *app) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
	return userOK && passOK
}

// setupAdminRoutes mounts the login flow and the protected dashboard.
func (a *app) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !a.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			a.logger.Warn("failed admin login attempt", "client", a.visits.HashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		// 24 hours, scoped to /admin.
		c.SetCookie(adminCookie, a.adminToken, 3600*24, "/admin", "", false, true)
		a.logger.Info("admin login successful", "client", a.visits.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(a.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.visits.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("error loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title":     "Dashboard",
			"stats":     stats,
			"portfolio": a.portfolio,
		})
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.visits.Recent(c.Request.Context(), 200)
		if err != nil {
			a.logger.Error("error loading visitors", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.visits.Stats(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed := a.cleanupVisits(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"message": "Privacy cleanup complete",
			"removed": removed,
		})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.visits.Stats(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		a.logger.Info("admin stats exported", "client", a.visits.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
