package yamlschema

import (
	"errors"
	"fmt"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnexpectedType       = "unexpected_type"
	CodeUnexpectedTag        = "unexpected_tag"
	CodeUnexpectedProperty   = "unexpected_property"
	CodeUnexpectedValue      = "unexpected_value"
	CodeInvalidString        = "invalid_string"
	CodeMissingRequiredField = "missing_required_field"
)

// Violation represents the single data-validation failure a validation call
// reports. Validation is fail-fast: the first violation produced during the
// descent propagates unchanged to the caller.
type Violation struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
}

// Error renders the violation as "<code> at <path>: <message>".
func (v *Violation) Error() string {
	if v == nil {
		return "violation <nil>"
	}
	if v.Message == "" {
		return fmt.Sprintf("%s at %s", v.Code, v.Path)
	}
	return fmt.Sprintf("%s at %s: %s", v.Code, v.Path, v.Message)
}

// AsViolation extracts a *Violation from an error using errors.As internally.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// SchemaError reports a malformed schema rather than malformed data: a
// missing items/properties pair, an unknown type name, a pattern that does
// not compile. It indicates a caller bug and is never returned as a
// Violation.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e == nil {
		return "schema error <nil>"
	}
	if e.Path == "" {
		return fmt.Sprintf("invalid schema: %s", e.Message)
	}
	return fmt.Sprintf("invalid schema at %s: %s", e.Path, e.Message)
}

// AsSchemaError extracts a *SchemaError from an error.
func AsSchemaError(err error) (*SchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func schemaErrorf(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Message: fmt.Sprintf(format, args...)}
}
