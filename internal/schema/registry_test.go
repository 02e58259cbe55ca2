package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gen := MustEntity("Generator", Field{Name: "uid", Required: true, Type: cty.String})
	net := MustEntity("Network", Field{Name: "generators", Entity: gen, List: true})

	reg := NewRegistry()

	// --- Act ---
	require.NoError(t, reg.Add(gen))
	require.NoError(t, reg.Add(net))

	// --- Assert ---
	got, ok := reg.Lookup("Generator")
	require.True(t, ok)
	assert.Same(t, gen, got)

	_, ok = reg.Lookup("Scenario")
	assert.False(t, ok)

	assert.Equal(t, []string{"Generator", "Network"}, reg.Names(), "names must keep registration order")

	err := reg.Add(MustEntity("Generator"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_ModuleFunc(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := NewRegistry()
	mod := ModuleFunc(func(r *Registry) {
		r.MustAdd(MustEntity("Scenario"))
	})

	// --- Act ---
	mod.Register(reg)

	// --- Assert ---
	_, ok := reg.Lookup("Scenario")
	assert.True(t, ok)
}
