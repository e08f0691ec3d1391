package content

import (
	"errors"
	"fmt"
)

var ErrProjectNotFound = errors.New("project not found")

// TypedText is the string revealed by the hero typing effect.
func (p Profile) TypedText() string {
	switch {
	case p.Name == "":
		return p.Title
	case p.Title == "":
		return p.Name
	}
	return p.Name + " | " + p.Title
}

// Categories returns the distinct skill categories in order of first appearance.
func (p *Portfolio) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, s := range p.Skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}
	return cats
}

// SkillsIn returns the skills of one category, keeping their authored order.
func (p *Portfolio) SkillsIn(category string) []Skill {
	var out []Skill
	for _, s := range p.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ProjectByID looks up a project by its id.
func (p *Portfolio) ProjectByID(id string) (*Project, error) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

const (
	ViewExperience = "experience"
	ViewEducation  = "education"
)

// Views lists the resume tabs; the first one is the default.
func Views() []string {
	return []string{ViewExperience, ViewEducation}
}

// Entry is the common shape of an experience or education record as shown
// on a resume card.
type Entry struct {
	Heading     string `json:"heading"`
	Org         string `json:"org"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Entries returns the records behind a resume tab in authored order.
func (p *Portfolio) Entries(view string) ([]Entry, error) {
	switch view {
	case ViewExperience:
		out := make([]Entry, len(p.Experience))
		for i, e := range p.Experience {
			out[i] = Entry{Heading: e.Title, Org: e.Company, Period: e.Period, Description: e.Description}
		}
		return out, nil
	case ViewEducation:
		out := make([]Entry, len(p.Education))
		for i, e := range p.Education {
			out[i] = Entry{Heading: e.Degree, Org: e.Institution, Period: e.Period, Description: e.Description}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown resume view %q", view)
}
