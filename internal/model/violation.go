package model

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// ViolationKind enumerates the classes of schema violation.
type ViolationKind int

const (
	// UnknownField marks a record field not declared on the entity type.
	UnknownField ViolationKind = iota
	// MissingField marks a declared required field absent from the record.
	MissingField
	// TypeMismatch marks a field value of the wrong semantic type.
	TypeMismatch
)

// String returns the kind's name for diagnostics.
func (k ViolationKind) String() string {
	switch k {
	case UnknownField:
		return "unknown field"
	case MissingField:
		return "missing required field"
	case TypeMismatch:
		return "type mismatch"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

// Violation reports a single schema violation. Path locates the offending
// field inside the record, including the index of a failing sequence
// element. Expected and Actual are set for type mismatches.
type Violation struct {
	Kind     ViolationKind
	Path     cty.Path
	Expected string
	Actual   string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	loc := PathString(v.Path)
	switch v.Kind {
	case TypeMismatch:
		return fmt.Sprintf("schema violation at %s: type mismatch, want %s, got %s", loc, v.Expected, v.Actual)
	default:
		return fmt.Sprintf("schema violation at %s: %s", loc, v.Kind)
	}
}

// PathString renders a violation path in the record's dotted form, for
// example "generators[1].bus".
func PathString(path cty.Path) string {
	if len(path) == 0 {
		return "(root)"
	}
	var sb strings.Builder
	for _, step := range path {
		switch s := step.(type) {
		case cty.GetAttrStep:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name)
		case cty.IndexStep:
			idx, _ := s.Key.AsBigFloat().Int64()
			fmt.Fprintf(&sb, "[%d]", idx)
		}
	}
	return sb.String()
}
