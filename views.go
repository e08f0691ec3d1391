package main

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/ui"
)

type navItem struct {
	ID    string
	Label string
}

// Section anchors in page order.
var navItems = []navItem{
	{ID: "hero", Label: "Home"},
	{ID: "projects", Label: "Projects"},
	{ID: "skills", Label: "Skills"},
	{ID: "contact", Label: "Contact"},
}

type iconView struct {
	Name  string
	Color string
	// Style carries the orbit position and loop length as CSS custom properties.
	Style template.CSS
}

type cardView struct {
	content.Project
	Expanded  bool
	ToggleURL string
	LongHTML  template.HTML
}

type tabView struct {
	Name   string
	URL    string
	Active bool
}

type skillBar struct {
	ID       string
	Name     string
	Level    int
	Progress int
}

type skillsView struct {
	Tabs     []tabView
	Active   string
	Bars     []skillBar
	Revealed bool
	// ObserveURL is where the client reports the section position.
	ObserveURL string
}

type resumeView struct {
	Tabs    []tabView
	Active  string
	Entries []content.Entry
}

type pageData struct {
	Title          string
	Theme          ui.Theme
	ThemeClass     string
	ToggleThemeURL string
	Brand          string
	Nav            []navItem
	NavBase        string
	Profile        content.Profile
	Icons          []iconView
	TypingURL      string
	Cards          []cardView
	Skills         skillsView
	Resume         resumeView
	Parallax       parallaxView
	Year           int
	Text           map[string]string
}

type parallaxView struct {
	ProjectsFactor float64
	SkillsFactor   float64
	ProjectsOffset float64
	SkillsOffset   float64
}

// basePage fills the page chrome. The theme toggle link keeps the rest of
// the page's query so the selected tab survives a theme switch.
func (a *app) basePage(title string, theme ui.Theme, page *url.URL) pageData {
	navBase := "/"
	if page.Path == "/" {
		navBase = ""
	}

	query := page.Query()
	query.Set("theme", string(theme.Toggle()))
	toggle := url.URL{Path: page.Path, RawQuery: query.Encode()}

	return pageData{
		Title:          title,
		Theme:          theme,
		ThemeClass:     theme.Class(),
		ToggleThemeURL: toggle.String(),
		Brand:          a.portfolio.Profile.Brand,
		Nav:            navItems,
		NavBase:        navBase,
		Profile:        a.portfolio.Profile,
		Year:           a.clock.Now().Year(),
		Text: map[string]string{
			"projects": ProjectsIntro,
			"skills":   SkillsIntro,
			"contact":  ContactIntro,
			"privacy":  PrivacyNotice,
		},
	}
}

func (a *app) homePage(theme ui.Theme, page *url.URL) (pageData, error) {
	data := a.basePage(a.portfolio.Profile.Brand, theme, page)
	data.Icons = iconViews(a.portfolio.Profile.TechIcons)
	data.TypingURL = "/hero/typing"

	data.Cards = make([]cardView, len(a.portfolio.Projects))
	for i := range a.portfolio.Projects {
		data.Cards[i] = a.card(&a.portfolio.Projects[i], false)
	}

	skills, err := a.skills("", &ui.Latch{})
	if err != nil {
		return data, err
	}
	data.Skills = skills

	data.Parallax = parallaxView{
		ProjectsFactor: ui.ProjectsParallax,
		SkillsFactor:   ui.SkillsParallax,
		ProjectsOffset: ui.ParallaxOffset(0, ui.ProjectsParallax),
		SkillsOffset:   ui.ParallaxOffset(0, ui.SkillsParallax),
	}
	return data, nil
}

func iconViews(icons []content.TechIcon) []iconView {
	out := make([]iconView, len(icons))
	for i, icon := range icons {
		x, y := ui.Orbit(i)
		out[i] = iconView{
			Name:  icon.Name,
			Color: icon.Color,
			Style: template.CSS(fmt.Sprintf("--x: %.2fpx; --y: %.2fpx; --duration: %gs; --color: %s;",
				x, y, ui.OrbitDuration(i).Seconds(), icon.Color)),
		}
	}
	return out
}

func (a *app) card(p *content.Project, expanded ui.Toggle) cardView {
	return cardView{
		Project:   *p,
		Expanded:  bool(expanded),
		ToggleURL: "/fragments/projects/" + url.PathEscape(p.ID) + "?expanded=" + expanded.Flip().Param(),
		LongHTML:  a.md.Render(p.LongDescription),
	}
}

// skills builds the skills panel for a category ("" selects the first one)
// with the bars gated by latch.
func (a *app) skills(category string, latch *ui.Latch) (skillsView, error) {
	tabs := ui.NewTabs(a.portfolio.Categories()...)
	if err := tabs.Select(category); err != nil {
		return skillsView{}, err
	}

	revealed := "0"
	if latch.Revealed() {
		revealed = "1"
	}

	view := skillsView{
		Active:   tabs.Active(),
		Revealed: latch.Revealed(),
		ObserveURL: "/fragments/skills?" + url.Values{
			"category": {tabs.Active()},
		}.Encode(),
	}
	for _, name := range tabs.Names() {
		view.Tabs = append(view.Tabs, tabView{
			Name:   name,
			Active: tabs.IsActive(name),
			URL: "/fragments/skills?" + url.Values{
				"category": {name},
				"revealed": {revealed},
			}.Encode(),
		})
	}
	for i, s := range a.portfolio.SkillsIn(tabs.Active()) {
		view.Bars = append(view.Bars, skillBar{
			ID:       fmt.Sprintf("skill-%s-%d", slug(tabs.Active()), i),
			Name:     s.Name,
			Level:    s.Level,
			Progress: latch.Progress(s.Level),
		})
	}
	return view, nil
}

func (a *app) resume(view string) (resumeView, error) {
	tabs := ui.NewTabs(content.Views()...)
	if err := tabs.Select(view); err != nil {
		return resumeView{}, err
	}

	entries, err := a.portfolio.Entries(tabs.Active())
	if err != nil {
		return resumeView{}, err
	}

	rv := resumeView{Active: tabs.Active(), Entries: entries}
	for _, name := range tabs.Names() {
		rv.Tabs = append(rv.Tabs, tabView{
			Name:   name,
			Active: tabs.IsActive(name),
			URL:    "/fragments/experience?tab=" + url.QueryEscape(name),
		})
	}
	return rv, nil
}

func slug(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b = append(b, byte(r))
		case r >= 'A' && r <= 'Z':
			b = append(b, byte(r-'A'+'a'))
		default:
			b = append(b, '-')
		}
	}
	return string(b)
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
