package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill categories. Technical skills render in the progress-bar lane,
// additional skills in the bullet lane.
const (
	SkillCategoryTechnical  = "technical"
	SkillCategoryAdditional = "additional"
)

// Resume templates
const (
	TemplateModern    = "modern"
	TemplateClassic   = "classic"
	TemplateExecutive = "executive"
)

// Text alignments
const (
	AlignLeft    = "left"
	AlignJustify = "justify"
)

// ContactInfo is the single contact block owned by a resume. It is created
// with the resume and only ever updated via partial merge.
type ContactInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Tagline  string `json:"tagline"`
}

// Experience represents one work experience entry. Order within the resume
// is the display order and is user-reorderable.
type Experience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Position         string   `json:"position"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Current          bool     `json:"current"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// Project represents a project entry. Company is a soft reference by name to
// an Experience.Company value; it is never validated and may dangle.
type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
	Company          string   `json:"company,omitempty"`
}

// Skill represents a single skill. Level is 0-100.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"` // technical, additional
}

// Education represents one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Award represents an award or certification.
type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Issuer      string `json:"issuer"`
}

// SectionVisibility toggles resume sections on and off in the display and
// the exporters that honor settings.
type SectionVisibility struct {
	Experience bool `json:"experience"`
	Projects   bool `json:"projects"`
	Skills     bool `json:"skills"`
	Education  bool `json:"education"`
	Awards     bool `json:"awards"`
}

// ResumeSettings is pure presentation configuration. A nil SectionVisibility
// means all sections visible; an imported settings block may omit it.
type ResumeSettings struct {
	Template          string             `json:"template"` // modern, classic, executive
	ThemeColor        string             `json:"themeColor"`
	FontFamily        string             `json:"fontFamily"`
	TextAlignment     string             `json:"textAlignment,omitempty"` // left, justify
	SectionVisibility *SectionVisibility `json:"sectionVisibility,omitempty"`
}

// ResumeData is the aggregate root. It exclusively owns its contact info and
// all entity slices; timestamps are ISO 8601 strings and UpdatedAt is
// refreshed on every content mutation.
type ResumeData struct {
	ID          string          `json:"id"`
	ContactInfo ContactInfo     `json:"contactInfo"`
	Experiences []Experience    `json:"experiences"`
	Projects    []Project       `json:"projects"`
	Skills      []Skill         `json:"skills"`
	Education   []Education     `json:"education"`
	Awards      []Award         `json:"awards"`
	Settings    *ResumeSettings `json:"settings,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// AllSectionsVisible returns a visibility block with every section on.
func AllSectionsVisible() SectionVisibility {
	return SectionVisibility{
		Experience: true,
		Projects:   true,
		Skills:     true,
		Education:  true,
		Awards:     true,
	}
}

// DefaultSettings returns the documented presentation defaults: modern
// template, left alignment, all sections visible.
func DefaultSettings() ResumeSettings {
	visibility := AllSectionsVisible()
	return ResumeSettings{
		Template:          TemplateModern,
		ThemeColor:        "#0972d3",
		FontFamily:        "Arial, sans-serif",
		TextAlignment:     AlignLeft,
		SectionVisibility: &visibility,
	}
}

// EffectiveSettings resolves the resume's settings, falling back to defaults
// when absent. Missing fields never hide content: an absent visibility block
// resolves to all sections visible.
func (r *ResumeData) EffectiveSettings() ResumeSettings {
	if r == nil || r.Settings == nil {
		return DefaultSettings()
	}
	s := *r.Settings
	if s.Template == "" {
		s.Template = TemplateModern
	}
	if s.TextAlignment == "" {
		s.TextAlignment = AlignLeft
	}
	if s.SectionVisibility == nil {
		visibility := AllSectionsVisible()
		s.SectionVisibility = &visibility
	}
	return s
}

// NewResume allocates an empty resume with fresh ids and equal
// created/updated timestamps.
func NewResume(now time.Time) *ResumeData {
	ts := now.UTC().Format(time.RFC3339Nano)
	return &ResumeData{
		ID: uuid.NewString(),
		ContactInfo: ContactInfo{
			ID: uuid.NewString(),
		},
		Experiences: []Experience{},
		Projects:    []Project{},
		Skills:      []Skill{},
		Education:   []Education{},
		Awards:      []Award{},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}
