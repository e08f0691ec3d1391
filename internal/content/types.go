package content

// Experience is one entry of the work history, listed most recent first.
type Experience struct {
	Title       string `yaml:"title" json:"title"`
	Company     string `yaml:"company" json:"company"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
}

// Education is one entry of the education history.
type Education struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
}

// Skill is a named proficiency. Level is a percentage in [0,100].
type Skill struct {
	Name     string `yaml:"name" json:"name"`
	Level    int    `yaml:"level" json:"level"`
	Category string `yaml:"category" json:"category"`
}

// Project is a gallery entry. Technologies keep their authored order.
type Project struct {
	ID              string   `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"long_description" json:"long_description"`
	Technologies    []string `yaml:"technologies" json:"technologies"`
	Image           string   `yaml:"image" json:"image"`
	DemoURL         string   `yaml:"demo_url,omitempty" json:"demo_url,omitempty"`
	SourceURL       string   `yaml:"source_url,omitempty" json:"source_url,omitempty"`
	Featured        bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
}

// TechIcon is a decorative badge floating around the hero banner.
type TechIcon struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Link is an outbound footer link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Profile holds the hero and page chrome copy.
type Profile struct {
	Brand          string     `yaml:"brand" json:"brand"`
	Name           string     `yaml:"name" json:"name"`
	Title          string     `yaml:"title" json:"title"`
	Description    string     `yaml:"description" json:"description"`
	Image          string     `yaml:"image" json:"image"`
	FallbackAvatar string     `yaml:"fallback_avatar" json:"fallback_avatar"`
	TechIcons      []TechIcon `yaml:"tech_icons" json:"tech_icons"`
	Links          []Link     `yaml:"links" json:"links"`
}

// Portfolio is the full, immutable set of display records.
type Portfolio struct {
	Profile    Profile      `yaml:"profile" json:"profile"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Education  []Education  `yaml:"education" json:"education"`
	Skills     []Skill      `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
}
