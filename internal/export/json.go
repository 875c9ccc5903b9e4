package export

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/pkg/models"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ToJSON serializes the full resume verbatim as indented canonical JSON.
func ToJSON(resume *models.ResumeData) ([]byte, error) {
	if resume == nil {
		return nil, &app.ExportError{Format: FormatJSON, Err: app.ErrNoCurrentResume}
	}
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return nil, &app.ExportError{Format: FormatJSON, Err: err}
	}
	return data, nil
}

// FromJSON parses and validates an exported resume document. Structural
// problems surface as an app.ValidationError naming the offending fields.
// FromJSON(ToJSON(x)) is deep-equal to x for any valid resume x.
func FromJSON(data []byte) (*models.ResumeData, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	resume := &models.ResumeData{}
	if err := json.Unmarshal(data, resume); err != nil {
		return nil, &app.ValidationError{Fields: []string{err.Error()}}
	}
	return resume, nil
}

// validateDocument checks the document against the embedded JSON Schema:
// a non-empty id, an object contactInfo, and array-typed entity collections.
// A missing settings block is acceptable.
func validateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &app.ValidationError{Fields: []string{"document is not valid JSON"}}
	}
	if res.Valid() {
		return nil
	}

	fields := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		fields = append(fields, describeSchemaError(e))
	}
	return &app.ValidationError{Fields: fields}
}

func describeSchemaError(e gojsonschema.ResultError) string {
	if e.Type() == "required" {
		if prop, ok := e.Details()["property"].(string); ok {
			return fmt.Sprintf("missing %s", prop)
		}
	}
	return fmt.Sprintf("%s: %s", e.Field(), e.Description())
}
