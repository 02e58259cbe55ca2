// Package schema declares the field registry for validated record types.
//
// An EntityType is a named, ordered set of Field descriptors. Entity types
// compose by nesting (a field referencing another entity type) or by
// aggregation (a field holding a sequence of another entity type).
// Composition is acyclic by construction: a field can only reference an
// entity type that already exists, and entity types are immutable once
// built, so no type can ever contain itself.
//
// The same descriptor tables drive both validation and schema export, which
// keeps the two consistent without any runtime reflection.
package schema

import "fmt"

// EntityType is a named, immutable, ordered set of field descriptors.
// It is shared read-only across all instances of the type.
type EntityType struct {
	name   string
	fields []Field
	byKey  map[string]int // field name and alias -> index into fields
}

// NewEntity builds an entity type from its field declarations. It fails if a
// declaration is malformed or if two fields collide on a name or alias.
func NewEntity(name string, fields ...Field) (*EntityType, error) {
	if name == "" {
		return nil, fmt.Errorf("entity type name cannot be empty")
	}

	et := &EntityType{
		name:   name,
		fields: make([]Field, len(fields)),
		byKey:  make(map[string]int, len(fields)*2),
	}
	copy(et.fields, fields)

	for i, f := range et.fields {
		if err := f.check(); err != nil {
			return nil, fmt.Errorf("entity type %q: %w", name, err)
		}
		if _, exists := et.byKey[f.Name]; exists {
			return nil, fmt.Errorf("entity type %q: duplicate field key %q", name, f.Name)
		}
		et.byKey[f.Name] = i
		if f.Alias != "" && f.Alias != f.Name {
			if _, exists := et.byKey[f.Alias]; exists {
				return nil, fmt.Errorf("entity type %q: duplicate field key %q", name, f.Alias)
			}
			et.byKey[f.Alias] = i
		}
	}

	return et, nil
}

// MustEntity is like NewEntity but panics on a malformed declaration. Entity
// types are declared as package-level tables, so a failure here is a
// programmer error caught at init time.
func MustEntity(name string, fields ...Field) *EntityType {
	et, err := NewEntity(name, fields...)
	if err != nil {
		panic(err)
	}
	return et
}

// Name returns the entity type's name.
func (e *EntityType) Name() string {
	return e.name
}

// Fields returns the declared fields in declaration order. The returned
// slice is shared; callers must not modify it.
func (e *EntityType) Fields() []Field {
	return e.fields
}

// Lookup finds a field by its internal name or external alias.
func (e *EntityType) Lookup(key string) (Field, bool) {
	i, ok := e.byKey[key]
	if !ok {
		return Field{}, false
	}
	return e.fields[i], true
}
