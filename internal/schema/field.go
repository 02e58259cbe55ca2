package schema

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Field describes one declared attribute of an entity type: its internal
// name, the external alias used in serialized form, a human-readable title,
// whether a record must supply it, and its semantic type.
//
// Exactly one shape applies per field. Scalar fields carry a cty primitive
// in Type (cty.String, cty.Number or cty.Bool). Entity fields reference
// another entity type via Entity, either as a single nested record or, with
// List set, as a sequence of records.
type Field struct {
	Name     string
	Alias    string // external key; empty means Name is used externally too
	Title    string
	Required bool

	Type   cty.Type
	Entity *EntityType
	List   bool

	// PathRef marks a string field whose value is a file reference. During
	// validation the value is resolved against the loading file's directory.
	PathRef bool
}

// ExternalName returns the key used for this field in serialized form.
func (f Field) ExternalName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// IsScalar reports whether the field holds a plain scalar value rather than
// a nested entity or a sequence of entities.
func (f Field) IsScalar() bool {
	return f.Entity == nil
}

// TypeName returns the semantic type of the field for diagnostics.
func (f Field) TypeName() string {
	switch {
	case f.Entity != nil && f.List:
		return "list of " + f.Entity.Name()
	case f.Entity != nil:
		return f.Entity.Name()
	default:
		return f.Type.FriendlyName()
	}
}

// check verifies that the field declaration itself is well formed.
func (f Field) check() error {
	if f.Name == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if f.Entity == nil {
		switch {
		case f.Type.Equals(cty.String), f.Type.Equals(cty.Number), f.Type.Equals(cty.Bool):
			// valid scalar types
		default:
			return fmt.Errorf("field %q: scalar type must be string, number or bool", f.Name)
		}
		if f.PathRef && !f.Type.Equals(cty.String) {
			return fmt.Errorf("field %q: path reference fields must be strings", f.Name)
		}
	} else {
		if f.Type != cty.NilType {
			return fmt.Errorf("field %q: cannot carry both a scalar type and an entity type", f.Name)
		}
		if f.PathRef {
			return fmt.Errorf("field %q: path reference fields must be strings", f.Name)
		}
	}
	if f.List && f.Entity == nil {
		return fmt.Errorf("field %q: list fields must reference an entity type", f.Name)
	}
	return nil
}
