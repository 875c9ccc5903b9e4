package models

import (
	"time"

	"github.com/google/uuid"
)

// NewSampleResume returns a fully populated demo resume, useful for trying
// the tool out before entering real content.
func NewSampleResume(now time.Time) *ResumeData {
	r := NewResume(now)

	r.ContactInfo.Name = "Sumanth Jillepally"
	r.ContactInfo.Phone = "+911234567890"
	r.ContactInfo.Email = "sample@email.com"
	r.ContactInfo.LinkedIn = "https://linkedin.com/in/sumanthjillepally"
	r.ContactInfo.Tagline = "Passionate Software Engineer with 5+ years of experience in developing scalable web applications and services."

	r.Experiences = []Experience{
		{
			ID:          uuid.NewString(),
			Company:     "Sample Company, Sample Location",
			Position:    "Senior Software Development Engineer",
			StartDate:   "October 2024",
			EndDate:     "",
			Current:     true,
			Description: "Lead the design and implementation of scalable software solutions that drive business growth, collaborating with cross-functional teams while mentoring junior engineers.",
			Responsibilities: []string{
				"Sample responsibility one for the sample company project",
				"Sample responsibility two for the sample company project",
			},
		},
		{
			ID:               uuid.NewString(),
			Company:          "Amazon, Bangalore",
			Position:         "Software Development Engineer",
			StartDate:        "May 2021",
			EndDate:          "October 2024",
			Current:          false,
			Description:      "Worked on various projects involving cloud computing, distributed systems, and application development.",
			Responsibilities: []string{},
		},
	}

	r.Projects = []Project{
		{
			ID:               uuid.NewString(),
			Title:            "Package Registry Explorer",
			Subtitle:         "Cross-ecosystem dependency browser",
			Description:      "A tool for browsing package metadata across registries.",
			Responsibilities: []string{"Designed the metadata model", "Built the registry crawlers"},
			Technologies:     []string{"Java", "Python", "JavaScript", "Maven", "npm", "PyPI"},
		},
	}

	r.Skills = []Skill{
		{ID: uuid.NewString(), Name: "Git & Dev tools", Level: 80, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "Python", Level: 85, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "Java", Level: 80, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "JS, TS, React", Level: 70, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "Docker", Level: 80, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "Databases", Level: 75, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "AWS", Level: 80, Category: SkillCategoryTechnical},
		{ID: uuid.NewString(), Name: "System design", Level: 0, Category: SkillCategoryAdditional},
		{ID: uuid.NewString(), Name: "Infrastructure, CDK", Level: 0, Category: SkillCategoryAdditional},
		{ID: uuid.NewString(), Name: "Pipelines & CI/CD", Level: 0, Category: SkillCategoryAdditional},
	}

	r.Education = []Education{
		{
			ID:          uuid.NewString(),
			Institution: "Chaitanya Bharathi Institute of Technology",
			Degree:      "Bachelor of Engineering - Electronics and Communications Engineering",
			Location:    "Hyderabad",
			StartDate:   "June 2012",
			EndDate:     "May 2016",
			Description: "Graduated in ECE with an overall aggregate of 79%.",
		},
	}

	r.Awards = []Award{
		{
			ID:          uuid.NewString(),
			Title:       "Excellence in Software Development",
			Description: "Recognized for outstanding contribution to system architecture",
			Date:        "2024",
			Issuer:      "Amazon",
		},
		{
			ID:          uuid.NewString(),
			Title:       "AWS Certified Solutions Architect",
			Description: "Professional level certification in cloud architecture",
			Date:        "2023",
			Issuer:      "Amazon Web Services",
		},
	}

	return r
}
