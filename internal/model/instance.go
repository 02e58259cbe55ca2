package model

import (
	"fmt"

	"github.com/gridds/bidds/internal/pathres"
	"github.com/gridds/bidds/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Instance is a validated record conforming to an entity type. Field values
// are one of cty.Value (scalar), *Instance (nested entity) or []*Instance
// (entity sequence). An instance exclusively owns its nested instances.
//
// Instances are immutable except through Set, which re-runs single-field
// validation, so assignment is never a bypass of the schema.
type Instance struct {
	etype  *schema.EntityType
	values map[string]any
	res    *pathres.Resolution // resolution the instance was validated under
}

// Type returns the entity type this instance conforms to.
func (in *Instance) Type() *schema.EntityType {
	return in.etype
}

// Has reports whether the named field is present on the instance.
func (in *Instance) Has(name string) bool {
	_, ok := in.values[name]
	return ok
}

// Value returns the raw stored value of a field: cty.Value for scalars,
// *Instance for nested entities, []*Instance for entity sequences.
func (in *Instance) Value(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Scalar returns the value of a scalar field.
func (in *Instance) Scalar(name string) (cty.Value, bool) {
	v, ok := in.values[name].(cty.Value)
	return v, ok
}

// StringVal returns the value of a string field, or "" if the field is
// absent or not a string.
func (in *Instance) StringVal(name string) string {
	v, ok := in.Scalar(name)
	if !ok || !v.Type().Equals(cty.String) {
		return ""
	}
	return v.AsString()
}

// Nested returns the value of a nested entity field.
func (in *Instance) Nested(name string) (*Instance, bool) {
	v, ok := in.values[name].(*Instance)
	return v, ok
}

// Sequence returns the value of an entity sequence field.
func (in *Instance) Sequence(name string) ([]*Instance, bool) {
	v, ok := in.values[name].([]*Instance)
	return v, ok
}

// Set replaces one field's value, running the same validation the field
// received when the record was first validated. On failure the instance is
// left unchanged and the same *Violation the constructor path would produce
// is returned. The field may be addressed by name or alias.
func (in *Instance) Set(name string, raw any) error {
	f, ok := in.etype.Lookup(name)
	if !ok {
		return &Violation{Kind: UnknownField, Path: cty.GetAttrPath(name)}
	}
	val, err := validateValue(f, raw, in.res, cty.GetAttrPath(name))
	if err != nil {
		return err
	}
	in.values[f.Name] = val
	return nil
}

// Equal reports structural, field-for-field equality with another instance
// of the same entity type.
func (in *Instance) Equal(other *Instance) bool {
	if in == nil || other == nil {
		return in == other
	}
	if in.etype != other.etype || len(in.values) != len(other.values) {
		return false
	}
	for name, v := range in.values {
		ov, ok := other.values[name]
		if !ok {
			return false
		}
		switch a := v.(type) {
		case cty.Value:
			b, ok := ov.(cty.Value)
			if !ok || !a.RawEquals(b) {
				return false
			}
		case *Instance:
			b, ok := ov.(*Instance)
			if !ok || !a.Equal(b) {
				return false
			}
		case []*Instance:
			b, ok := ov.([]*Instance)
			if !ok || len(a) != len(b) {
				return false
			}
			for i := range a {
				if !a[i].Equal(b[i]) {
					return false
				}
			}
		default:
			return false
		}
	}
	return true
}

// GoString implements fmt.GoStringer for readable test failures.
func (in *Instance) GoString() string {
	return fmt.Sprintf("model.Instance<%s>%v", in.etype.Name(), in.values)
}
