// Package pathres models the resolution context for relative file references
// inside a record.
//
// A Resolution is an explicit value threaded through a single load, not
// process-wide state: each load builds its own Resolution rooted at the
// loaded file's parent directory, so loading the same file from any working
// directory yields identical results, and nothing leaks to sibling or
// subsequent loads.
package pathres

import (
	"fmt"
	"path/filepath"
)

// Resolution holds the base directory against which relative file
// references are resolved during one load. It is immutable.
type Resolution struct {
	base string
}

// New creates a Resolution rooted at the given directory. The directory is
// made absolute so that resolution does not depend on the process working
// directory afterwards.
func New(base string) (*Resolution, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve base directory %q: %w", base, err)
	}
	return &Resolution{base: abs}, nil
}

// Base returns the absolute base directory.
func (r *Resolution) Base() string {
	return r.base
}

// Resolve turns a file reference into an absolute path. Relative references
// are joined onto the base directory; absolute references are cleaned and
// returned as-is.
func (r *Resolution) Resolve(ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(r.base, ref)
}
