// Package content holds the data rendered on the portfolio page.
//
// A Portfolio is built once at startup (from the built-in literals, optionally
// overlaid with a YAML file) and is treated as read-only afterwards.
package content

// SkillGroup is a named bucket of skills. Items are shown in order.
type SkillGroup struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

// Project is a single portfolio entry. Tech tags are shown in order.
type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Impact      string   `yaml:"impact" json:"impact"`
}

// ContactInfo holds the outbound destinations surfaced throughout the page.
type ContactInfo struct {
	Email    string `yaml:"email" json:"email"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	GitHub   string `yaml:"github" json:"github"`
}

// Heading is the label and title pair shown above a section.
type Heading struct {
	Label string `yaml:"label" json:"label"`
	Title string `yaml:"title" json:"title"`
}

// Stat is a pre-formatted metric shown in the hero.
type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Brand struct {
	Mark     string `yaml:"mark" json:"mark"`
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

type Image struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Summary is the "what you get" card shown in the hero when no image is set.
type Summary struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

type Hero struct {
	Label           string  `yaml:"label" json:"label"`
	Title           string  `yaml:"title" json:"title"`
	Description     string  `yaml:"description" json:"description"`
	PrimaryAction   string  `yaml:"primary_action" json:"primary_action"`
	SecondaryAction string  `yaml:"secondary_action" json:"secondary_action"`
	Stats           []Stat  `yaml:"stats" json:"stats"`
	Image           Image   `yaml:"image" json:"image"`
	Summary         Summary `yaml:"summary" json:"summary"`
}

type Footer struct {
	Byline string `yaml:"byline" json:"byline"`
}

// Portfolio is everything the page renders.
type Portfolio struct {
	Brand           Brand        `yaml:"brand" json:"brand"`
	Hero            Hero         `yaml:"hero" json:"hero"`
	SkillsHeading   Heading      `yaml:"skills_heading" json:"skills_heading"`
	Skills          []SkillGroup `yaml:"skills" json:"skills"`
	ProjectsHeading Heading      `yaml:"projects_heading" json:"projects_heading"`
	Projects        []Project    `yaml:"projects" json:"projects"`
	ContactHeading  Heading      `yaml:"contact_heading" json:"contact_heading"`
	ContactPitch    string       `yaml:"contact_pitch" json:"contact_pitch"`
	Contact         ContactInfo  `yaml:"contact" json:"contact"`
	Footer          Footer       `yaml:"footer" json:"footer"`
}
