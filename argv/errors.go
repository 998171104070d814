package argv

import "fmt"

// ErrorType represents error categories for classification operations.
// These categories let callers branch on what went wrong without parsing
// error strings.
type ErrorType string

const (
	ErrorTypeConflictingModes  ErrorType = "conflicting_modes"
	ErrorTypeEmptyToken        ErrorType = "empty_token"
	ErrorTypeAlreadyClassified ErrorType = "already_classified"
)

// ParseError represents classification-specific errors (used by classify.go)
type ParseError struct {
	Type     ErrorType
	Message  string
	Token    string // Offending token, when one exists
	Position int    // Index of the offending token, -1 when not positional
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:     errType,
		Message:  message,
		Position: -1,
	}
}

// ConvertError reports a failed string-to-type conversion. Input retains the
// raw string so callers can distinguish a present-but-malformed value from a
// value that was never recorded.
type ConvertError struct {
	Input  string
	Target string
	Err    error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Input, e.Target, e.Err)
}

// Unwrap returns the underlying strconv/time error
func (e *ConvertError) Unwrap() error {
	return e.Err
}
