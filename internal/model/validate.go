package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gridds/bidds/internal/ctxlog"
	"github.com/gridds/bidds/internal/pathres"
	"github.com/gridds/bidds/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Validate checks a raw nested record against an entity type and returns an
// immutable Instance on success. The record is closed-world: any key not
// declared on the entity type is rejected. res supplies the base directory
// for resolving path reference fields; it may be nil, in which case path
// references are kept verbatim.
//
// Validation fails fast with a *Violation describing the first problem
// found. Record keys may use either a field's internal name or its external
// alias; supplying both for the same field is rejected.
func Validate(ctx context.Context, et *schema.EntityType, raw map[string]any, res *pathres.Resolution) (*Instance, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validating record.", "entity", et.Name(), "fields", len(raw))

	return validateEntity(et, raw, res, nil)
}

func validateEntity(et *schema.EntityType, raw map[string]any, res *pathres.Resolution, path cty.Path) (*Instance, error) {
	values := make(map[string]any, len(raw))

	// Iterate keys in sorted order so that which violation surfaces first is
	// deterministic when a record has several.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := et.Lookup(key)
		if !ok {
			return nil, &Violation{Kind: UnknownField, Path: path.GetAttr(key)}
		}
		if _, dup := values[f.Name]; dup {
			// The field was already populated under its other key (name vs
			// alias). A second occurrence is not a declared distinct field.
			return nil, &Violation{Kind: UnknownField, Path: path.GetAttr(key)}
		}
		val, err := validateValue(f, raw[key], res, path.GetAttr(key))
		if err != nil {
			return nil, err
		}
		values[f.Name] = val
	}

	for _, f := range et.Fields() {
		if !f.Required {
			continue
		}
		if _, ok := values[f.Name]; !ok {
			return nil, &Violation{Kind: MissingField, Path: path.GetAttr(f.Name)}
		}
	}

	return &Instance{etype: et, values: values, res: res}, nil
}

// validateValue checks one field value against its descriptor, recursing for
// nested entities and entity sequences.
func validateValue(f schema.Field, raw any, res *pathres.Resolution, path cty.Path) (any, error) {
	switch {
	case f.Entity != nil && f.List:
		items, ok := raw.([]any)
		if !ok {
			return nil, mismatch(path, f.TypeName(), rawTypeName(raw))
		}
		out := make([]*Instance, len(items))
		for i, item := range items {
			elemPath := path.Index(cty.NumberIntVal(int64(i)))
			rec, ok := item.(map[string]any)
			if !ok {
				return nil, mismatch(elemPath, f.Entity.Name(), rawTypeName(item))
			}
			inst, err := validateEntity(f.Entity, rec, res, elemPath)
			if err != nil {
				return nil, err
			}
			out[i] = inst
		}
		return out, nil

	case f.Entity != nil:
		rec, ok := raw.(map[string]any)
		if !ok {
			return nil, mismatch(path, f.Entity.Name(), rawTypeName(raw))
		}
		return validateEntity(f.Entity, rec, res, path)

	default:
		return validateScalar(f, raw, res, path)
	}
}

// validateScalar normalizes and type-checks a scalar value. Strings are
// trimmed of surrounding whitespace before anything else; this is structural
// normalization, and it happens before path references are resolved.
func validateScalar(f schema.Field, raw any, res *pathres.Resolution, path cty.Path) (cty.Value, error) {
	switch {
	case f.Type.Equals(cty.String):
		s, ok := raw.(string)
		if !ok {
			return cty.NilVal, mismatch(path, "string", rawTypeName(raw))
		}
		s = strings.TrimSpace(s)
		if f.PathRef && res != nil {
			s = res.Resolve(s)
		}
		return cty.StringVal(s), nil

	case f.Type.Equals(cty.Number):
		switch n := raw.(type) {
		case json.Number:
			val, err := cty.ParseNumberVal(n.String())
			if err != nil {
				return cty.NilVal, mismatch(path, "number", fmt.Sprintf("malformed number %q", n.String()))
			}
			return val, nil
		case float64:
			return cty.NumberFloatVal(n), nil
		case int:
			return cty.NumberIntVal(int64(n)), nil
		case int64:
			return cty.NumberIntVal(n), nil
		default:
			return cty.NilVal, mismatch(path, "number", rawTypeName(raw))
		}

	case f.Type.Equals(cty.Bool):
		b, ok := raw.(bool)
		if !ok {
			return cty.NilVal, mismatch(path, "bool", rawTypeName(raw))
		}
		return cty.BoolVal(b), nil

	default:
		// Unreachable for well-formed entity types; Field.check rejects
		// anything but the three scalar primitives.
		return cty.NilVal, mismatch(path, f.Type.FriendlyName(), rawTypeName(raw))
	}
}

func mismatch(path cty.Path, expected, actual string) *Violation {
	return &Violation{Kind: TypeMismatch, Path: path, Expected: expected, Actual: actual}
}

// rawTypeName reports the semantic type of a raw value for diagnostics.
func rawTypeName(raw any) string {
	switch raw.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, int, int64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
