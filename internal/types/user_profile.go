package types

import "github.com/go-playground/validator/v10"

// Experience represents a single employment entry in a candidate profile
type Experience struct {
	Company   string   `json:"company" validate:"required"`
	Role      string   `json:"role" validate:"required"`
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate,omitempty"`
	Bullets   []string `json:"bullets"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Language represents a spoken language and proficiency level
type Language struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"required"`
}

// Preferences captures the candidate's job-search preferences
type Preferences struct {
	TargetRole string   `json:"targetRole,omitempty"`
	Locations  []string `json:"locations"`
	Remote     bool     `json:"remote,omitempty"`
}

// UserProfile represents the candidate facts consumed by the tailoring
// pipeline. It is owned by the caller and treated as read-only input.
type UserProfile struct {
	FullName    string       `json:"fullName" validate:"required"`
	Headline    string       `json:"headline,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Experiences []Experience `json:"experiences" validate:"dive"`
	Projects    []Project    `json:"projects" validate:"dive"`
	Education   []Education  `json:"education" validate:"dive"`
	Skills      []string     `json:"skills"`
	Languages   []Language   `json:"languages" validate:"dive"`
	Preferences Preferences  `json:"preferences"`
}

// Validate validates the UserProfile using the validator.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
