package export

import (
	"strings"

	"github.com/sumanthj/resumeforge/pkg/models"
)

// Export formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatWord     = "docx"
	FormatPDF      = "pdf"
)

// genericNames are the per-format defaults used when the resume has no
// contact name.
var genericNames = map[string]string{
	FormatJSON:     "resume.json",
	FormatMarkdown: "Resume.md",
	FormatWord:     "Resume.docx",
	FormatPDF:      "Resume.pdf",
}

// Filename derives the download filename for a format:
// "<Name with spaces replaced by underscores>_Resume.<ext>", falling back to
// a fixed generic name per format.
func Filename(resume *models.ResumeData, format string) string {
	name := ""
	if resume != nil {
		name = strings.TrimSpace(resume.ContactInfo.Name)
	}
	if name == "" {
		if generic, ok := genericNames[format]; ok {
			return generic
		}
		return "Resume." + format
	}
	return strings.Join(strings.Fields(name), "_") + "_Resume." + format
}
