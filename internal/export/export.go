// Package export renders the JSON Schema document describing an entity
// type. The document lists exactly the fields the validation engine
// enforces, with additionalProperties set to false to mirror the
// closed-world schema, and is driven by the same descriptor tables, so the
// two cannot drift apart.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gridds/bidds/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Options control schema document rendering.
type Options struct {
	// Aliases selects external aliases as property names; otherwise internal
	// field names are used.
	Aliases bool
	// Indent is the per-level indentation string; empty means compact
	// output.
	Indent string
}

// Schema renders the JSON Schema document for an entity type. Output is
// deterministic: property order follows field declaration order, and the
// same entity type and options always produce byte-identical bytes.
func Schema(et *schema.EntityType, opts Options) ([]byte, error) {
	doc, err := entityNode(et, opts.Aliases)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot encode schema for %s: %w", et.Name(), err)
	}
	if opts.Indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", opts.Indent); err != nil {
			return nil, fmt.Errorf("cannot indent schema for %s: %w", et.Name(), err)
		}
		data = buf.Bytes()
	}
	return data, nil
}

// objectNode is the JSON-Schema object describing one entity type. Nested
// and aggregate fields inline the nested entity's node.
type objectNode struct {
	Title                string      `json:"title"`
	Type                 string      `json:"type"`
	Properties           *orderedObj `json:"properties"`
	Required             []string    `json:"required,omitempty"`
	AdditionalProperties bool        `json:"additionalProperties"`
}

type scalarNode struct {
	Title string `json:"title,omitempty"`
	Type  string `json:"type"`
}

type arrayNode struct {
	Title string          `json:"title,omitempty"`
	Type  string          `json:"type"`
	Items json.RawMessage `json:"items"`
}

func entityNode(et *schema.EntityType, aliases bool) (*objectNode, error) {
	props := &orderedObj{}
	var required []string

	for _, f := range et.Fields() {
		name := f.Name
		if aliases {
			name = f.ExternalName()
		}

		var (
			node any
			err  error
		)
		switch {
		case f.Entity != nil && f.List:
			var inner *objectNode
			inner, err = entityNode(f.Entity, aliases)
			if err == nil {
				var items json.RawMessage
				items, err = json.Marshal(inner)
				node = arrayNode{Title: f.Title, Type: "array", Items: items}
			}
		case f.Entity != nil:
			var inner *objectNode
			inner, err = entityNode(f.Entity, aliases)
			if err == nil {
				if f.Title != "" {
					inner.Title = f.Title
				}
				node = inner
			}
		default:
			node = scalarNode{Title: f.Title, Type: primitiveName(f.Type)}
		}
		if err != nil {
			return nil, err
		}

		if err := props.add(name, node); err != nil {
			return nil, err
		}
		if f.Required {
			required = append(required, name)
		}
	}

	return &objectNode{
		Title:                et.Name(),
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}, nil
}

// primitiveName maps a scalar semantic type to its JSON Schema primitive.
func primitiveName(t cty.Type) string {
	switch {
	case t.Equals(cty.String):
		return "string"
	case t.Equals(cty.Number):
		return "number"
	case t.Equals(cty.Bool):
		return "boolean"
	default:
		return "string"
	}
}

// orderedObj marshals as a JSON object whose keys keep insertion order.
// encoding/json sorts map keys, which would break declaration-order output.
type orderedObj struct {
	keys []string
	vals []json.RawMessage
}

func (o *orderedObj) add(key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, data)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o *orderedObj) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(o.vals[i])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
