package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultFixture []byte

// Default returns the portfolio embedded in the binary.
func Default() (*Portfolio, error) {
	return Parse(defaultFixture)
}

// Load reads a portfolio fixture from path, or the embedded one when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("portfolio %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML fixture and validates it. Unknown keys are rejected so
// a typo in a field name fails the load instead of silently dropping data.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants of the data model and reports every
// violation at once.
func (p *Portfolio) Validate() error {
	var errs []error

	for i, e := range p.Experience {
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: title is required", i))
		}
	}
	for i, e := range p.Education {
		if e.Degree == "" {
			errs = append(errs, fmt.Errorf("education[%d]: degree is required", i))
		}
	}

	for i, s := range p.Skills {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: name is required", i))
		}
		if s.Category == "" {
			errs = append(errs, fmt.Errorf("skills[%d] %q: category is required", i, s.Name))
		}
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skills[%d] %q: level %d outside [0,100]", i, s.Name, s.Level))
		}
	}

	seen := make(map[string]int, len(p.Projects))
	for i, pr := range p.Projects {
		if pr.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
		} else if !validID(pr.ID) {
			errs = append(errs, fmt.Errorf("projects[%d]: id %q may only contain letters, digits, '-' and '_'", i, pr.ID))
		} else if first, dup := seen[pr.ID]; dup {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q (first at projects[%d])", i, pr.ID, first))
		} else {
			seen[pr.ID] = i
		}
		if pr.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid portfolio: %w", errors.Join(errs...))
	}
	return nil
}

// validID reports whether id is safe as an element id suffix and CSS selector.
func validID(id string) bool {
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
