package export

import (
	"testing"
	"time"

	"github.com/sumanthj/resumeforge/pkg/models"
)

func TestFilename(t *testing.T) {
	named := models.NewResume(time.Now())
	named.ContactInfo.Name = "Ada Lovelace"

	spaced := models.NewResume(time.Now())
	spaced.ContactInfo.Name = "  Ada   Byron  Lovelace "

	unnamed := models.NewResume(time.Now())

	tests := []struct {
		name   string
		resume *models.ResumeData
		format string
		want   string
	}{
		{"named pdf", named, FormatPDF, "Ada_Lovelace_Resume.pdf"},
		{"named docx", named, FormatWord, "Ada_Lovelace_Resume.docx"},
		{"named md", named, FormatMarkdown, "Ada_Lovelace_Resume.md"},
		{"named json", named, FormatJSON, "Ada_Lovelace_Resume.json"},
		{"whitespace collapsed", spaced, FormatPDF, "Ada_Byron_Lovelace_Resume.pdf"},
		{"unnamed pdf", unnamed, FormatPDF, "Resume.pdf"},
		{"unnamed json", unnamed, FormatJSON, "resume.json"},
		{"nil resume", nil, FormatMarkdown, "Resume.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.resume, tt.format); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"October 2024", "Oct 2024"},
		{"2024-10", "Oct 2024"},
		{"2024-10-15", "Oct 2024"},
		{"Jan 2020", "Jan 2020"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
