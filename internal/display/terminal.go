package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumanthj/resumeforge/pkg/models"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			MarginTop(1)

	headingStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true)

	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderTerminal projects the resume into a styled terminal view honoring
// the resume's section visibility.
func RenderTerminal(resume *models.ResumeData) string {
	if resume == nil {
		return ""
	}
	settings := resume.EffectiveSettings()

	var out strings.Builder

	name := resume.ContactInfo.Name
	if name == "" {
		name = "(unnamed resume)"
	}
	out.WriteString(nameStyle.Render(name) + "\n")
	if resume.ContactInfo.Tagline != "" {
		out.WriteString(mutedStyle.Render(resume.ContactInfo.Tagline) + "\n")
	}

	contact := []string{}
	if resume.ContactInfo.Email != "" {
		contact = append(contact, resume.ContactInfo.Email)
	}
	if resume.ContactInfo.Phone != "" {
		contact = append(contact, resume.ContactInfo.Phone)
	}
	if resume.ContactInfo.LinkedIn != "" {
		contact = append(contact, resume.ContactInfo.LinkedIn)
	}
	if len(contact) > 0 {
		out.WriteString(strings.Join(contact, " | ") + "\n")
	}

	if settings.SectionVisibility.Experience && len(resume.Experiences) > 0 {
		out.WriteString(sectionStyle.Render("EXPERIENCE") + "\n")
		for _, exp := range resume.Experiences {
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			heading := exp.Company
			if exp.Location != "" {
				heading += " | " + exp.Location
			}
			out.WriteString(headingStyle.Render(heading) + "\n")
			fmt.Fprintf(&out, "  %s  %s\n", exp.Position, mutedStyle.Render(exp.StartDate+" – "+end))
			if exp.Description != "" {
				fmt.Fprintf(&out, "  %s\n", exp.Description)
			}
			for _, resp := range exp.Responsibilities {
				fmt.Fprintf(&out, "  • %s\n", resp)
			}
		}
	}

	if settings.SectionVisibility.Projects && len(resume.Projects) > 0 {
		out.WriteString(sectionStyle.Render("PROJECTS") + "\n")
		for _, proj := range resume.Projects {
			heading := proj.Title
			if proj.Company != "" {
				heading += " (@ " + proj.Company + ")"
			}
			out.WriteString(headingStyle.Render(heading) + "\n")
			if proj.Subtitle != "" {
				fmt.Fprintf(&out, "  %s\n", mutedStyle.Render(proj.Subtitle))
			}
			if proj.Description != "" {
				fmt.Fprintf(&out, "  %s\n", proj.Description)
			}
			for _, resp := range proj.Responsibilities {
				fmt.Fprintf(&out, "  • %s\n", resp)
			}
			if len(proj.Technologies) > 0 {
				fmt.Fprintf(&out, "  %s\n", mutedStyle.Render("Technologies: "+strings.Join(proj.Technologies, ", ")))
			}
		}
	}

	if settings.SectionVisibility.Skills && len(resume.Skills) > 0 {
		out.WriteString(sectionStyle.Render("SKILLS") + "\n")
		for _, skill := range resume.Skills {
			if skill.Category == models.SkillCategoryAdditional {
				continue
			}
			fmt.Fprintf(&out, "  %-24s %s %3d%%\n", skill.Name, progressBar(skill.Level), skill.Level)
		}
		for _, skill := range resume.Skills {
			if skill.Category != models.SkillCategoryAdditional {
				continue
			}
			fmt.Fprintf(&out, "  • %s\n", skill.Name)
		}
	}

	if settings.SectionVisibility.Education && len(resume.Education) > 0 {
		out.WriteString(sectionStyle.Render("EDUCATION") + "\n")
		for _, edu := range resume.Education {
			heading := edu.Institution
			if edu.Location != "" {
				heading += " | " + edu.Location
			}
			out.WriteString(headingStyle.Render(heading) + "\n")
			fmt.Fprintf(&out, "  %s  %s\n", edu.Degree, mutedStyle.Render(edu.StartDate+" – "+edu.EndDate))
			if edu.Description != "" {
				fmt.Fprintf(&out, "  %s\n", edu.Description)
			}
		}
	}

	if settings.SectionVisibility.Awards && len(resume.Awards) > 0 {
		out.WriteString(sectionStyle.Render("AWARDS & CERTIFICATIONS") + "\n")
		for _, award := range resume.Awards {
			out.WriteString(headingStyle.Render(award.Title) + "\n")
			fmt.Fprintf(&out, "  %s  %s\n", award.Issuer, mutedStyle.Render(award.Date))
			if award.Description != "" {
				fmt.Fprintf(&out, "  %s\n", award.Description)
			}
		}
	}

	return out.String()
}

// progressBar renders a 20-cell bar for a 0-100 skill level.
func progressBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := level / 5
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", 20-filled))
}
