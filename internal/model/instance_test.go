package model

import (
	"context"
	"testing"

	"github.com/gridds/bidds/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func newGenerator(t *testing.T, uid, bus string) *Instance {
	t.Helper()
	inst, err := Validate(context.Background(), testGenerator, map[string]any{"uid": uid, "bus": bus}, nil)
	require.NoError(t, err)
	return inst
}

func TestInstance_Accessors(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	raw := mustDecode(t, `{"generators": [{"uid": "G1", "bus": "B1"}, {"uid": "G2", "bus": "B2"}]}`)
	inst, err := Validate(context.Background(), testNetwork, raw, nil)
	require.NoError(t, err)

	// --- Assert ---
	assert.Same(t, testNetwork, inst.Type())
	assert.True(t, inst.Has("generators"))
	assert.False(t, inst.Has("buses"))

	gens, ok := inst.Sequence("generators")
	require.True(t, ok)
	require.Len(t, gens, 2)
	assert.Equal(t, "G2", gens[1].StringVal("uid"))

	_, ok = inst.Nested("generators")
	assert.False(t, ok, "a sequence field is not a nested entity")
}

func TestInstance_SetRevalidates(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	inst := newGenerator(t, "G1", "B1")

	// --- Act / Assert ---
	// A valid assignment goes through the same normalization as construction.
	require.NoError(t, inst.Set("bus", " B2 "))
	assert.Equal(t, "B2", inst.StringVal("bus"))

	// Assignment is not a bypass: bad values fail with the same violation
	// the constructor path produces, and the instance stays unchanged.
	err := inst.Set("bus", 7)
	var v *Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, TypeMismatch, v.Kind)
	assert.Equal(t, "bus", PathString(v.Path))
	assert.Equal(t, "B2", inst.StringVal("bus"))

	err = inst.Set("capacity", 7)
	require.ErrorAs(t, err, &v)
	assert.Equal(t, UnknownField, v.Kind)
}

func TestInstance_Equal(t *testing.T) {
	t.Parallel()

	a := newGenerator(t, "G1", "B1")
	b := newGenerator(t, " G1 ", "B1")
	c := newGenerator(t, "G1", "B2")

	assert.True(t, a.Equal(b), "trimmed input must produce an equal instance")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	// Instances of different entity types never compare equal, even with
	// identical field values.
	other := schema.MustEntity("Other",
		schema.Field{Name: "uid", Required: true, Type: cty.String},
		schema.Field{Name: "bus", Required: true, Type: cty.String},
	)
	o, err := Validate(context.Background(), other, map[string]any{"uid": "G1", "bus": "B1"}, nil)
	require.NoError(t, err)
	assert.False(t, a.Equal(o))
}
