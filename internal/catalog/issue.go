package catalog

import (
	"errors"
	"strings"
)

// Severity classifies an Issue.
type Severity int

const (
	// SeverityError marks a defect that fails the run.
	SeverityError Severity = iota
	// SeverityWarning marks a non-fatal advisory.
	SeverityWarning
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Sentinel errors for conditions that stop a run before entry checks.
var (
	ErrLoadFailed       = errors.New("catalog document could not be loaded")
	ErrResultsNotArray  = errors.New("results document is not an array")
	ErrValidationFailed = errors.New("validation failed")
)

// Issue is a single finding with its location in a document.
type Issue struct {
	Path     string // location, e.g. "results[3].tags" (empty for document-level issues)
	Message  string // human-readable description, without the path
	Severity Severity
}

// Error implements the error interface.
func (i *Issue) Error() string {
	if i.Path == "" {
		return i.Message
	}
	var sb strings.Builder
	sb.WriteString(i.Path)
	sb.WriteString(" ")
	sb.WriteString(i.Message)
	return sb.String()
}

// failure builds an error-severity Issue.
func failure(path, message string) *Issue {
	return &Issue{Path: path, Message: message, Severity: SeverityError}
}

// warning builds a warning-severity Issue.
func warning(path, message string) *Issue {
	return &Issue{Path: path, Message: message, Severity: SeverityWarning}
}
