// Package strength scores how complete a resume is, as a checklist shown
// alongside the preview.
package strength

import "github.com/sumanthj/resumeforge/pkg/models"

// Check statuses
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Check is one completeness criterion.
type Check struct {
	Label  string
	Status string
}

// Report is the full checklist plus a 0-100 score.
type Report struct {
	Checks []Check
	Score  int
}

// Evaluate runs the completeness checklist against a resume.
func Evaluate(resume *models.ResumeData) Report {
	if resume == nil {
		return Report{}
	}

	checks := []Check{
		{
			Label:  "Contact Info Complete",
			Status: pick(resume.ContactInfo.Name != "" && resume.ContactInfo.Email != "", StatusError),
		},
		{
			Label:  "Professional Tagline",
			Status: pick(resume.ContactInfo.Tagline != "", StatusWarning),
		},
		{
			Label:  "Work Experience Added",
			Status: pick(len(resume.Experiences) > 0, StatusError),
		},
		{
			Label:  "Skills Listed (min 3)",
			Status: pick(len(resume.Skills) >= 3, StatusWarning),
		},
		{
			Label:  "Education Details",
			Status: pick(len(resume.Education) > 0, StatusWarning),
		},
	}

	passed := 0
	for _, c := range checks {
		if c.Status == StatusSuccess {
			passed++
		}
	}
	return Report{
		Checks: checks,
		Score:  passed * 100 / len(checks),
	}
}

func pick(ok bool, failure string) string {
	if ok {
		return StatusSuccess
	}
	return failure
}
