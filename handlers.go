package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/ui"
)

// home renders the full page: nav, hero, projects, skills, contact, footer.
func (a *app) home(c *gin.Context) {
	data, err := a.homePage(ui.ParseTheme(c.Query("theme")), c.Request.URL)
	if err != nil {
		a.logger.Error("failed to build home page", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong."})
		return
	}
	a.metrics.PageView("home")
	c.HTML(http.StatusOK, "index.html", data)
}

// resumePage renders the experience/education tabs on their own page.
func (a *app) resumePage(c *gin.Context) {
	data := a.basePage("Resume", ui.ParseTheme(c.Query("theme")), c.Request.URL)
	resume, err := a.resume(c.Query("tab"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": err.Error()})
		return
	}
	data.Resume = resume
	a.metrics.PageView("resume")
	c.HTML(http.StatusOK, "resume.html", data)
}

func (a *app) privacyPage(c *gin.Context) {
	data := a.basePage("Privacy Policy", ui.ParseTheme(c.Query("theme")), c.Request.URL)
	c.HTML(http.StatusOK, "privacy.html", data)
}

// experienceFragment handles GET /fragments/experience?tab=
func (a *app) experienceFragment(c *gin.Context) {
	resume, err := a.resume(c.Query("tab"))
	if errors.Is(err, ui.ErrUnknownTab) {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		a.logger.Error("failed to build resume", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	a.metrics.Fragment("experience")
	c.HTML(http.StatusOK, "experience-panel", resume)
}

// skillsFragment handles GET /fragments/skills. The client reports the
// section's top offset and the viewport height; revealed=1 carries a latch
// that already fired.
func (a *app) skillsFragment(c *gin.Context) {
	latch := ui.RestoreLatch(bool(ui.ParseToggle(c.Query("revealed"))))

	top, okTop := parseFloat(c.Query("top"))
	viewport, okViewport := parseFloat(c.Query("viewport"))
	if okTop != okViewport {
		c.String(http.StatusBadRequest, "top and viewport must be given together")
		return
	}
	if okTop {
		latch.Observe(top, viewport)
	}

	view, err := a.skills(c.Query("category"), latch)
	if errors.Is(err, ui.ErrUnknownTab) {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		a.logger.Error("failed to build skills", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	a.metrics.Fragment("skills")
	c.HTML(http.StatusOK, "skills-panel", view)
}

// projectFragment handles GET /fragments/projects/:id?expanded=
func (a *app) projectFragment(c *gin.Context) {
	project, err := a.portfolio.ProjectByID(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "project not found")
		return
	}
	a.metrics.Fragment("project")
	c.HTML(http.StatusOK, "project-card", a.card(project, ui.ParseToggle(c.Query("expanded"))))
}

// profileImage serves the local profile picture, or redirects to the
// fallback avatar when the file is missing.
func (a *app) profileImage(c *gin.Context) {
	path := a.cfg.ProfileImage
	if path == "" {
		path = a.portfolio.Profile.Image
	}
	if path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
	}

	fallback := a.portfolio.Profile.FallbackAvatar
	if fallback == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.Redirect(http.StatusFound, fallback)
}

func (a *app) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", gin.H{"contact": ContactIntro})
}

// submitContact handles POST /contact. Every outcome is returned as a 200
// fragment so HTMX swaps it into place.
func (a *app) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		a.metrics.Contact("invalid")
		c.HTML(http.StatusOK, "contact-result", gin.H{"error": ContactInvalid})
		return
	}

	err := a.mailer.Send(c.Request.Context(), form)
	switch {
	case errors.Is(err, contact.ErrMailerDisabled):
		a.metrics.Contact("disabled")
		c.HTML(http.StatusOK, "contact-result", gin.H{"error": ContactDisabled})
	case err != nil:
		a.metrics.Contact("failed")
		a.logger.Error("failed to send contact email", "error", err)
		c.HTML(http.StatusOK, "contact-result", gin.H{"error": ContactFailed})
	default:
		a.metrics.Contact("sent")
		a.logger.Info("contact message relayed")
		c.HTML(http.StatusOK, "contact-result", gin.H{"success": ContactSent})
	}
}

// --- JSON API ---

func (a *app) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, a.portfolio.Projects)
}

func (a *app) getProject(c *gin.Context) {
	project, err := a.portfolio.ProjectByID(c.Param("id"))
	if errors.Is(err, content.ErrProjectNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (a *app) listSkills(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, a.portfolio.Skills)
		return
	}

	skills := a.portfolio.SkillsIn(category)
	if len(skills) == 0 {
		respondError(c, http.StatusNotFound, "Unknown category")
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (a *app) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, a.portfolio.Categories())
}

func (a *app) listEntries(view string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := a.portfolio.Entries(view)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
