package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Zachkp/portfolio/internal/content"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func testPortfolio(t *testing.T) *content.Portfolio {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	return p
}

func TestListProjects(t *testing.T) {
	p := testPortfolio(t)

	var all []content.Project
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, handleListProjects(p), nil))), &all))
	assert.Len(t, all, 6)

	var featured []content.Project
	res := call(t, handleListProjects(p), map[string]any{"featured_only": true})
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, "1", featured[0].ID)
}

func TestGetProject(t *testing.T) {
	p := testPortfolio(t)

	var got content.Project
	res := call(t, handleGetProject(p), map[string]any{"id": "6"})
	require.False(t, res.IsError)
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, "Real Estate Marketplace", got.Title)

	assert.True(t, call(t, handleGetProject(p), map[string]any{"id": "99"}).IsError)
	assert.True(t, call(t, handleGetProject(p), nil).IsError)
}

func TestListSkills(t *testing.T) {
	p := testPortfolio(t)

	var groups []SkillResult
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, handleListSkills(p), nil))), &groups))
	require.Len(t, groups, 3)
	assert.Equal(t, "Frontend", groups[0].Category)

	res := call(t, handleListSkills(p), map[string]any{"category": "DevOps"})
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &groups))
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Skills, 6)

	assert.True(t, call(t, handleListSkills(p), map[string]any{"category": "Design"}).IsError)
}

func TestGetResume(t *testing.T) {
	p := testPortfolio(t)

	var entries []content.Entry
	res := call(t, handleGetResume(p), map[string]any{"view": "education"})
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "Kenyatta University", entries[1].Org)

	assert.True(t, call(t, handleGetResume(p), map[string]any{"view": "hobbies"}).IsError)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer(testPortfolio(t), "test")
	assert.NotNil(t, s)
}
