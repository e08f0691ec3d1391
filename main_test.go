package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateEmbeddedPortfolio(t *testing.T) {
	out, err := runCmd(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "ok: 6 projects, 18 skills in 3 categories, 3 experience, 3 education\n", out)
}

func TestValidateRejectsBadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	fixture := `
projects:
  - { id: "1", title: One }
  - { id: "1", title: Two }
skills:
  - { name: Go, level: 101, category: Backend }
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	_, err := runCmd(t, "validate", "--content", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate id "1"`)
	assert.Contains(t, err.Error(), "level 101")
}

func TestValidateMissingFixture(t *testing.T) {
	_, err := runCmd(t, "validate", "--content", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
