package tailoring

import "fmt"

// ValidationError indicates malformed or missing caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError indicates there is no underlying data to act on.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// UpstreamError indicates the external model call failed.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model call failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// StoreError indicates a read from the record store failed. Unlike the
// best-effort save after generation, read failures block the response.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
