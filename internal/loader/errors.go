package loader

import "fmt"

// LoadError reports a failure to read or write a record file.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying I/O error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// MalformedInputError reports a file that was readable but did not contain a
// single JSON object.
type MalformedInputError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input in %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying decode error.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
