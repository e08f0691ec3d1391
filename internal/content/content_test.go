package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixture(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Len(t, p.Projects, 6)
	for i, pr := range p.Projects {
		assert.Equal(t, string(rune('1'+i)), pr.ID)
	}
	assert.Equal(t, []string{"Frontend", "Backend", "DevOps"}, p.Categories())
	assert.Equal(t, "AI & ML engineer | Software Developer", p.Profile.TypedText())
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Education, 3)
}

func TestSkillsInKeepsOrder(t *testing.T) {
	p := &Portfolio{Skills: []Skill{
		{Name: "React", Level: 90, Category: "Frontend"},
		{Name: "Go", Level: 80, Category: "Backend"},
		{Name: "CSS", Level: 70, Category: "Frontend"},
	}}

	got := p.SkillsIn("Frontend")
	require.Len(t, got, 2)
	assert.Equal(t, "React", got[0].Name)
	assert.Equal(t, "CSS", got[1].Name)

	assert.Equal(t, got, p.SkillsIn("Frontend"), "filter must be deterministic")
	assert.Empty(t, p.SkillsIn("Design"))
}

func TestProjectByID(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	pr, err := p.ProjectByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Weather Dashboard", pr.Title)
	assert.Equal(t, []string{"React", "D3.js", "OpenWeather API"}, pr.Technologies)

	_, err = p.ProjectByID("42")
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestParseRejectsInvalidFixtures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "level above range",
			yaml: `
skills:
  - { name: React, level: 101, category: Frontend }
`,
			wantErr: "level 101 outside [0,100]",
		},
		{
			name: "negative level",
			yaml: `
skills:
  - { name: React, level: -1, category: Frontend }
`,
			wantErr: "level -1 outside [0,100]",
		},
		{
			name: "duplicate project id",
			yaml: `
projects:
  - { id: "1", title: A }
  - { id: "1", title: B }
`,
			wantErr: `duplicate id "1"`,
		},
		{
			name: "project id with selector characters",
			yaml: `
projects:
  - { id: "a.b:c", title: A }
`,
			wantErr: `id "a.b:c" may only contain`,
		},
		{
			name: "missing project title",
			yaml: `
projects:
  - { id: "1" }
`,
			wantErr: "projects[0]: title is required",
		},
		{
			name: "unknown field",
			yaml: `
skills:
  - { name: React, levle: 90, category: Frontend }
`,
			wantErr: "levle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	p := &Portfolio{
		Skills:   []Skill{{Name: "A", Level: 200, Category: "X"}, {Name: "", Level: 50, Category: "X"}},
		Projects: []Project{{ID: "1", Title: "A"}, {ID: "1", Title: "B"}},
	}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 200")
	assert.Contains(t, err.Error(), "skills[1]: name is required")
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile: { name: Ada, title: Engineer }
skills:
  - { name: Go, level: 95, category: Backend }
`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada | Engineer", p.Profile.TypedText())
	assert.Equal(t, []string{"Backend"}, p.Categories())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestTypedTextWithPartialProfile(t *testing.T) {
	assert.Equal(t, "", Profile{}.TypedText())
	assert.Equal(t, "Ada", Profile{Name: "Ada"}.TypedText())
	assert.Equal(t, "Engineer", Profile{Title: "Engineer"}.TypedText())
}

func TestEntriesPerView(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	exp, err := p.Entries(ViewExperience)
	require.NoError(t, err)
	require.Len(t, exp, 3)
	assert.Equal(t, "Machine learning & AI engineer", exp[0].Heading)
	assert.Equal(t, "Tech Innovations Inc.", exp[0].Org)

	edu, err := p.Entries(ViewEducation)
	require.NoError(t, err)
	require.Len(t, edu, 3)
	assert.Equal(t, "Master of Computer Science", edu[0].Heading)

	again, err := p.Entries(ViewExperience)
	require.NoError(t, err)
	assert.Equal(t, exp, again)

	_, err = p.Entries("hobbies")
	assert.Error(t, err)
}
