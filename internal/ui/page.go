package ui

import (
	"math"
	"time"
)

// Theme is the page-wide color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme falls back to Light for anything but "dark".
func ParseTheme(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Class is the CSS class applied to the document root.
func (t Theme) Class() string {
	if t == Dark {
		return "dark"
	}
	return ""
}

// Toggle is the expand/collapse flag of a single project card.
type Toggle bool

func ParseToggle(s string) Toggle {
	switch s {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func (t Toggle) Flip() Toggle { return !t }

// Param renders the flag as a query value.
func (t Toggle) Param() string {
	if t {
		return "1"
	}
	return "0"
}

// Parallax factors for the page sections.
const (
	ProjectsParallax = 0.1
	SkillsParallax   = -0.05
)

// ParallaxOffset is the background shift for a scroll position.
func ParallaxOffset(scrollY, factor float64) float64 {
	return scrollY * factor
}

const orbitRadius = 150

// Orbit is the resting offset of the i-th floating hero icon.
func Orbit(i int) (x, y float64) {
	a := float64(i+1) * 0.5
	return math.Sin(a) * orbitRadius, math.Cos(a) * orbitRadius
}

// OrbitDuration is the loop length of the i-th icon's float animation.
func OrbitDuration(i int) time.Duration {
	return time.Duration(10+2*i) * time.Second
}
