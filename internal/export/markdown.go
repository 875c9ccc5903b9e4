package export

import (
	"fmt"
	"strings"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/pkg/models"
)

// ToMarkdown renders the resume as a UTF-8 Markdown document. Sections are
// emitted in fixed order and omitted entirely when their collection is empty.
func ToMarkdown(resume *models.ResumeData) ([]byte, error) {
	if resume == nil {
		return nil, &app.ExportError{Format: FormatMarkdown, Err: app.ErrNoCurrentResume}
	}

	var md strings.Builder

	name := resume.ContactInfo.Name
	if name == "" {
		name = "Resume"
	}
	fmt.Fprintf(&md, "# %s\n\n", name)

	if resume.ContactInfo.Tagline != "" {
		fmt.Fprintf(&md, "*%s*\n\n", resume.ContactInfo.Tagline)
	}

	contactParts := []string{}
	if resume.ContactInfo.Email != "" {
		contactParts = append(contactParts, resume.ContactInfo.Email)
	}
	if resume.ContactInfo.Phone != "" {
		contactParts = append(contactParts, resume.ContactInfo.Phone)
	}
	if resume.ContactInfo.LinkedIn != "" {
		contactParts = append(contactParts, fmt.Sprintf("[LinkedIn](%s)", resume.ContactInfo.LinkedIn))
	}
	if len(contactParts) > 0 {
		md.WriteString(strings.Join(contactParts, " | ") + "\n\n---\n\n")
	}

	if len(resume.Experiences) > 0 {
		md.WriteString("## Experience\n\n")
		for _, exp := range resume.Experiences {
			heading := exp.Company
			if exp.Location != "" {
				heading += " | " + exp.Location
			}
			fmt.Fprintf(&md, "### %s\n", heading)

			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			fmt.Fprintf(&md, "**%s** | *%s – %s*\n\n", exp.Position, exp.StartDate, end)

			if exp.Description != "" {
				fmt.Fprintf(&md, "%s\n\n", exp.Description)
			}
			if len(exp.Responsibilities) > 0 {
				for _, resp := range exp.Responsibilities {
					fmt.Fprintf(&md, "- %s\n", resp)
				}
				md.WriteString("\n")
			}
		}
	}

	if len(resume.Projects) > 0 {
		md.WriteString("## Projects\n\n")
		for _, proj := range resume.Projects {
			heading := proj.Title
			if proj.Company != "" {
				heading += fmt.Sprintf(" (@ %s)", proj.Company)
			}
			fmt.Fprintf(&md, "### %s\n", heading)

			if proj.Subtitle != "" {
				fmt.Fprintf(&md, "*%s*\n\n", proj.Subtitle)
			}
			if proj.Description != "" {
				fmt.Fprintf(&md, "%s\n\n", proj.Description)
			}
			for _, resp := range proj.Responsibilities {
				fmt.Fprintf(&md, "- %s\n", resp)
			}
			if len(proj.Technologies) > 0 {
				fmt.Fprintf(&md, "\n**Technologies**: %s\n", strings.Join(proj.Technologies, ", "))
			}
			md.WriteString("\n")
		}
	}

	if len(resume.Education) > 0 {
		md.WriteString("## Education\n\n")
		for _, edu := range resume.Education {
			heading := edu.Institution
			if edu.Location != "" {
				heading += " | " + edu.Location
			}
			fmt.Fprintf(&md, "### %s\n", heading)
			fmt.Fprintf(&md, "**%s** | *%s – %s*\n\n", edu.Degree, edu.StartDate, edu.EndDate)
			if edu.Description != "" {
				fmt.Fprintf(&md, "%s\n\n", edu.Description)
			}
		}
	}

	if len(resume.Skills) > 0 {
		md.WriteString("## Skills\n\n")
		technical := skillNames(resume.Skills, models.SkillCategoryTechnical)
		additional := skillNames(resume.Skills, models.SkillCategoryAdditional)
		if len(technical) > 0 {
			fmt.Fprintf(&md, "**Technical**: %s\n\n", strings.Join(technical, ", "))
		}
		if len(additional) > 0 {
			fmt.Fprintf(&md, "**Additional**: %s\n\n", strings.Join(additional, ", "))
		}
	}

	if len(resume.Awards) > 0 {
		md.WriteString("## Awards & Certifications\n\n")
		for _, award := range resume.Awards {
			fmt.Fprintf(&md, "### %s\n", award.Title)
			fmt.Fprintf(&md, "**%s** | *%s*\n\n", award.Issuer, award.Date)
			if award.Description != "" {
				fmt.Fprintf(&md, "%s\n\n", award.Description)
			}
		}
	}

	return []byte(md.String()), nil
}

func skillNames(skills []models.Skill, category string) []string {
	names := []string{}
	for _, s := range skills {
		if s.Category == category {
			names = append(names, s.Name)
		}
	}
	return names
}
