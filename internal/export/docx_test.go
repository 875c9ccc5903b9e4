package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/pkg/models"
)

func TestToWordProducesPackage(t *testing.T) {
	resume := models.NewSampleResume(time.Now())

	data, err := ToWord(resume)
	if err != nil {
		t.Fatalf("ToWord() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("ToWord() returned empty document")
	}
	// OOXML packages are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("document does not start with zip magic, got % x", data[:2])
	}
}

func TestToWordEmptyResume(t *testing.T) {
	resume := models.NewResume(time.Now())

	data, err := ToWord(resume)
	if err != nil {
		t.Fatalf("ToWord() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("ToWord() returned empty document for empty resume")
	}
}

func TestToWordNilResume(t *testing.T) {
	_, err := ToWord(nil)
	if err == nil {
		t.Fatal("ToWord(nil) expected error")
	}
	var exportErr *app.ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("ToWord(nil) error = %T, want *app.ExportError", err)
	}
	if exportErr.Format != FormatWord {
		t.Errorf("ExportError.Format = %q, want %q", exportErr.Format, FormatWord)
	}
}

func TestToWordBase64(t *testing.T) {
	resume := models.NewSampleResume(time.Now())

	encoded, err := ToWordBase64(resume)
	if err != nil {
		t.Fatalf("ToWordBase64() error = %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(decoded, []byte("PK")) {
		t.Error("decoded payload is not a zip package")
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"both dates", "January 2020", "March 2022", "Jan 2020 - Mar 2022"},
		{"open ended", "January 2020", "", "Jan 2020 - Present"},
		{"no dates", "", "", "Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateRange(tt.start, tt.end); got != tt.want {
				t.Errorf("dateRange(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
