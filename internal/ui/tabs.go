package ui

import (
	"errors"
	"fmt"
)

var ErrUnknownTab = errors.New("unknown tab")

// Tabs is a selector over a fixed set of names with exactly one active.
type Tabs struct {
	names  []string
	active int
}

// NewTabs activates the first name.
func NewTabs(names ...string) *Tabs {
	return &Tabs{names: append([]string(nil), names...)}
}

func (t *Tabs) Names() []string {
	return append([]string(nil), t.names...)
}

// Active returns the selected name, or "" for an empty selector.
func (t *Tabs) Active() string {
	if len(t.names) == 0 {
		return ""
	}
	return t.names[t.active]
}

func (t *Tabs) IsActive(name string) bool {
	return len(t.names) > 0 && t.names[t.active] == name
}

// Select activates name. An empty name keeps the current selection.
func (t *Tabs) Select(name string) error {
	if name == "" {
		return nil
	}
	for i, n := range t.names {
		if n == name {
			t.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, name)
}
