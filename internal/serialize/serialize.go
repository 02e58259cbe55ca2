// Package serialize converts validated instances into canonical records:
// plain nested mappings of scalars, sequences and mappings only, with no
// internal instance references. A canonical record is valid input to the
// validation engine for the same entity type.
package serialize

import (
	"encoding/json"

	"github.com/gridds/bidds/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Options control canonicalization.
type Options struct {
	// Aliases selects external aliases as output keys; otherwise internal
	// field names are used.
	Aliases bool
	// Exclude lists dotted internal field paths to omit from the output,
	// for example "uid" or "network.generators". Exclusion applies before
	// normalization.
	Exclude []string
}

// Canonical serializes an instance with aliases on and no exclusions, the
// common case for writing records out.
func Canonical(inst *model.Instance) map[string]any {
	return Serialize(inst, Options{Aliases: true})
}

// Serialize walks the instance tree depth-first and returns the canonical
// record. Keys follow field declaration order semantics via the entity
// type's descriptor table; map ordering itself is left to the encoder.
func Serialize(inst *model.Instance, opts Options) map[string]any {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, p := range opts.Exclude {
		exclude[p] = struct{}{}
	}
	return serializeInstance(inst, opts.Aliases, exclude, "")
}

func serializeInstance(inst *model.Instance, aliases bool, exclude map[string]struct{}, prefix string) map[string]any {
	out := make(map[string]any, len(inst.Type().Fields()))
	for _, f := range inst.Type().Fields() {
		fieldPath := f.Name
		if prefix != "" {
			fieldPath = prefix + "." + f.Name
		}
		if _, skip := exclude[fieldPath]; skip {
			continue
		}

		val, ok := inst.Value(f.Name)
		if !ok {
			continue
		}

		key := f.Name
		if aliases {
			key = f.ExternalName()
		}

		switch v := val.(type) {
		case cty.Value:
			out[key] = scalarToNative(v)
		case *model.Instance:
			out[key] = serializeInstance(v, aliases, exclude, fieldPath)
		case []*model.Instance:
			seq := make([]any, len(v))
			for i, elem := range v {
				seq[i] = serializeInstance(elem, aliases, exclude, fieldPath)
			}
			out[key] = seq
		}
	}
	return out
}

// scalarToNative converts a scalar cty value to its plain Go form. Numbers
// become json.Number so that encoding and re-validation preserve their exact
// decimal representation.
func scalarToNative(v cty.Value) any {
	switch {
	case v.Type().Equals(cty.String):
		return v.AsString()
	case v.Type().Equals(cty.Bool):
		return v.True()
	case v.Type().Equals(cty.Number):
		return json.Number(v.AsBigFloat().Text('f', -1))
	default:
		// Unreachable: validation only produces the three primitives.
		return nil
	}
}
