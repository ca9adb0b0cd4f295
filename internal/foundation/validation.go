package foundation

import (
	"fmt"
	"strings"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
)

// FieldError represents a single validation failure located by a config path
// such as "navbar.items[2]" or "footer.groups[0].items[1]".
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// NewFieldError creates a FieldError.
func NewFieldError(field, code, message string) FieldError {
	return FieldError{Field: field, Code: code, Message: message}
}

// ValidationResult collects field errors. The zero value is valid.
type ValidationResult struct {
	Errors []FieldError
}

// Valid reports whether no errors were recorded.
func (vr ValidationResult) Valid() bool { return len(vr.Errors) == 0 }

// Add records a failure.
func (vr *ValidationResult) Add(field, code, format string, args ...any) {
	vr.Errors = append(vr.Errors, NewFieldError(field, code, fmt.Sprintf(format, args...)))
}

// Merge appends all errors of other.
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Errors = append(vr.Errors, other.Errors...)
}

// Fields returns the offending field paths in recording order.
func (vr ValidationResult) Fields() []string {
	out := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		out = append(out, e.Field)
	}
	return out
}

// ToError converts the result to a classified validation error, or nil when valid.
func (vr ValidationResult) ToError(message string) error {
	if vr.Valid() {
		return nil
	}
	lines := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		lines = append(lines, fe.Error())
	}
	return errors.ValidationError(message+": "+strings.Join(lines, "; ")).
		WithContext("fields", vr.Fields()).
		WithContext("count", len(vr.Errors)).
		Build()
}
