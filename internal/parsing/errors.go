package parsing

import "fmt"

// ParseError represents a failure to parse the model's response as JSON.
// Raw carries the full response text so operators can diagnose what the
// model actually returned; it must never be silently discarded.
type ParseError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
