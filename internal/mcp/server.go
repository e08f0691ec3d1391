package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Zachkp/portfolio/internal/content"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with read-only tools over the portfolio.
func NewServer(p *content.Portfolio, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Portfolio",
		version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("list_projects",
			mcp.WithDescription("List portfolio projects in display order with their technologies."),
			mcp.WithBoolean("featured_only",
				mcp.Description("Only return projects marked as featured"),
			),
		),
		handleListProjects(p),
	)

	s.AddTool(
		mcp.NewTool("get_project",
			mcp.WithDescription("Get one project by id, including its long description."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Project id, e.g. '1'"),
			),
		),
		handleGetProject(p),
	)

	s.AddTool(
		mcp.NewTool("list_skills",
			mcp.WithDescription("List skills with their proficiency level, optionally for one category."),
			mcp.WithString("category",
				mcp.Description("Optional: category name such as 'Frontend'"),
			),
		),
		handleListSkills(p),
	)

	s.AddTool(
		mcp.NewTool("get_resume",
			mcp.WithDescription("Get the work experience or education history, most recent first."),
			mcp.WithString("view",
				mcp.Description("'experience' (default) or 'education'"),
			),
		),
		handleGetResume(p),
	)

	return s
}

// SkillResult is a skill group returned by list_skills.
type SkillResult struct {
	Category string          `json:"category"`
	Skills   []content.Skill `json:"skills"`
}

func handleListProjects(p *content.Portfolio) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		featuredOnly := req.GetBool("featured_only", false)

		projects := make([]content.Project, 0, len(p.Projects))
		for _, pr := range p.Projects {
			if featuredOnly && !pr.Featured {
				continue
			}
			projects = append(projects, pr)
		}
		return jsonResult(projects)
	}
}

func handleGetProject(p *content.Portfolio) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		project, err := p.ProjectByID(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(project)
	}
}

func handleListSkills(p *content.Portfolio) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories := p.Categories()
		if category := req.GetString("category", ""); category != "" {
			categories = []string{category}
		}

		results := make([]SkillResult, 0, len(categories))
		for _, cat := range categories {
			skills := p.SkillsIn(cat)
			if len(skills) == 0 {
				return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", cat)), nil
			}
			results = append(results, SkillResult{Category: cat, Skills: skills})
		}
		return jsonResult(results)
	}
}

func handleGetResume(p *content.Portfolio) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view := req.GetString("view", content.ViewExperience)

		entries, err := p.Entries(view)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(entries)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
