package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/pkg/models"
)

// ToWord builds the resume as an OOXML document and returns the serialized
// .docx package. Section headings appear only when the collection is
// non-empty; experience and education entries render a bold header line, an
// italic date range, and an optional description paragraph. Responsibilities
// are intentionally not rendered in this format.
func ToWord(resume *models.ResumeData) ([]byte, error) {
	if resume == nil {
		return nil, &app.ExportError{Format: FormatWord, Err: app.ErrNoCurrentResume}
	}

	doc, err := buildWordDocument(resume)
	if err != nil {
		return nil, &app.ExportError{Format: FormatWord, Err: err}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, &app.ExportError{Format: FormatWord, Err: err}
	}
	return buf.Bytes(), nil
}

// ToWordBase64 returns the document package as a base64 string for
// programmatic consumption.
func ToWordBase64(resume *models.ResumeData) (string, error) {
	data, err := ToWord(resume)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func buildWordDocument(resume *models.ResumeData) (*docx.Docx, error) {
	doc := docx.New().WithDefaultTheme()

	name := resume.ContactInfo.Name
	if name == "" {
		name = "Your Name"
	}
	title := doc.AddParagraph().Justification("center")
	title.AddText(name).Size("40").Bold()

	if resume.ContactInfo.Tagline != "" {
		doc.AddParagraph().Justification("center").AddText(resume.ContactInfo.Tagline)
	}

	contactParts := []string{}
	if resume.ContactInfo.Email != "" {
		contactParts = append(contactParts, "Email: "+resume.ContactInfo.Email)
	}
	if resume.ContactInfo.Phone != "" {
		contactParts = append(contactParts, "Phone: "+resume.ContactInfo.Phone)
	}
	if resume.ContactInfo.LinkedIn != "" {
		contactParts = append(contactParts, "LinkedIn: "+resume.ContactInfo.LinkedIn)
	}
	if len(contactParts) > 0 {
		doc.AddParagraph().Justification("center").AddText(strings.Join(contactParts, " | "))
	}

	if len(resume.Experiences) > 0 {
		addSectionHeading(doc, "EXPERIENCE")
		for _, exp := range resume.Experiences {
			header := []string{}
			if exp.Position != "" {
				header = append(header, exp.Position)
			}
			if exp.Company != "" {
				header = append(header, "at "+exp.Company)
			}
			doc.AddParagraph().AddText(strings.Join(header, " ")).Bold()
			doc.AddParagraph().AddText(dateRange(exp.StartDate, exp.EndDate)).Italic()
			if exp.Description != "" {
				doc.AddParagraph().AddText(exp.Description)
			}
		}
	}

	if len(resume.Education) > 0 {
		addSectionHeading(doc, "EDUCATION")
		for _, edu := range resume.Education {
			header := []string{}
			if edu.Degree != "" {
				header = append(header, edu.Degree)
			}
			if edu.Institution != "" {
				header = append(header, "from "+edu.Institution)
			}
			if edu.Location != "" {
				header = append(header, fmt.Sprintf("(%s)", edu.Location))
			}
			doc.AddParagraph().AddText(strings.Join(header, " ")).Bold()
			doc.AddParagraph().AddText(dateRange(edu.StartDate, edu.EndDate)).Italic()
			if edu.Description != "" {
				doc.AddParagraph().AddText(edu.Description)
			}
		}
	}

	if len(resume.Projects) > 0 {
		addSectionHeading(doc, "PROJECTS")
		for _, proj := range resume.Projects {
			title := proj.Title
			if title == "" {
				title = "Project"
			}
			doc.AddParagraph().AddText(title).Bold()
			if len(proj.Technologies) > 0 {
				doc.AddParagraph().AddText("Technologies: " + strings.Join(proj.Technologies, ", ")).Italic()
			}
			if proj.Description != "" {
				doc.AddParagraph().AddText(proj.Description)
			}
		}
	}

	if len(resume.Skills) > 0 {
		addSectionHeading(doc, "SKILLS")
		technical := skillNames(resume.Skills, models.SkillCategoryTechnical)
		additional := skillNames(resume.Skills, models.SkillCategoryAdditional)
		if len(technical) > 0 {
			doc.AddParagraph().AddText("Technical Skills: " + strings.Join(technical, ", "))
		}
		if len(additional) > 0 {
			doc.AddParagraph().AddText("Additional Skills: " + strings.Join(additional, ", "))
		}
	}

	if len(resume.Awards) > 0 {
		addSectionHeading(doc, "AWARDS")
		for _, award := range resume.Awards {
			title := award.Title
			if title == "" {
				title = "Award"
			}
			doc.AddParagraph().AddText(title).Bold()
			if award.Description != "" {
				doc.AddParagraph().AddText(award.Description)
			}
		}
	}

	return doc, nil
}

func addSectionHeading(doc *docx.Docx, text string) {
	doc.AddParagraph().AddText(text).Size("28").Bold()
}

// dateRange joins best-effort reformatted dates. An empty end date renders
// "Present" regardless of the current flag, matching the display contract
// for open-ended entries.
func dateRange(start, end string) string {
	parts := []string{}
	if start != "" {
		parts = append(parts, FormatDate(start))
	}
	if end != "" {
		parts = append(parts, FormatDate(end))
	} else {
		parts = append(parts, "Present")
	}
	return strings.Join(parts, " - ")
}
