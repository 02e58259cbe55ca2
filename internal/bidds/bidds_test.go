package bidds

import (
	"context"
	"testing"

	"github.com/gridds/bidds/internal/model"
	"github.com/gridds/bidds/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelRaw() map[string]any {
	return map[string]any{
		"network": map[string]any{
			"generators": []any{
				map[string]any{"uid": " G1 ", "bus": "B1"},
				map[string]any{"uid": "G2", "bus": "B2"},
			},
		},
		"scenario": map[string]any{},
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := schema.NewRegistry()
	Register(reg)

	assert.Equal(t, []string{"Generator", "Scenario", "Network", "Model"}, reg.Names())

	et, ok := reg.Lookup("Model")
	require.True(t, ok)
	assert.Same(t, ModelType, et)
}

func TestModelType_Validates(t *testing.T) {
	t.Parallel()

	inst, err := model.Validate(context.Background(), ModelType, modelRaw(), nil)
	require.NoError(t, err)

	network, ok := inst.Nested("network")
	require.True(t, ok)
	gens, ok := network.Sequence("generators")
	require.True(t, ok)
	assert.Len(t, gens, 2)
}

func TestScenarioType_RejectsContent(t *testing.T) {
	t.Parallel()

	raw := modelRaw()
	raw["scenario"] = map[string]any{"horizon": 24}

	_, err := model.Validate(context.Background(), ModelType, raw, nil)

	var v *model.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, model.UnknownField, v.Kind)
	assert.Equal(t, "scenario.horizon", model.PathString(v.Path))
}

func TestAsModel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	inst, err := model.Validate(context.Background(), ModelType, modelRaw(), nil)
	require.NoError(t, err)

	// --- Act ---
	m, err := AsModel(inst)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, m.Network.Generators, 2)
	assert.Equal(t, Generator{UID: "G1", Bus: "B1"}, m.Network.Generators[0], "typed view sees trimmed values")
	assert.Equal(t, Generator{UID: "G2", Bus: "B2"}, m.Network.Generators[1])
}

func TestAsGenerator_WrongType(t *testing.T) {
	t.Parallel()

	inst, err := model.Validate(context.Background(), ModelType, modelRaw(), nil)
	require.NoError(t, err)

	_, err = AsGenerator(inst)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a Generator instance")
}
