package app

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common application errors
var (
	ErrNotFound        = errors.New("resume not found")
	ErrNoCurrentResume = errors.New("no resume loaded")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports a malformed resume document, naming the fields
// that are missing or have the wrong shape.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid resume document"
	}
	return fmt.Sprintf("invalid resume document: %s", strings.Join(e.Fields, ", "))
}

// ExportError reports a failed export, carrying the output format.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export failed: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// PersistenceError reports a failed gateway operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
