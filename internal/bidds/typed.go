package bidds

import (
	"fmt"

	"github.com/gridds/bidds/internal/model"
	"github.com/gridds/bidds/internal/serialize"
	"github.com/mitchellh/mapstructure"
)

// Generator is the typed view of a validated Generator instance.
type Generator struct {
	UID string `mapstructure:"uid"`
	Bus string `mapstructure:"bus"`
}

// Network is the typed view of a validated Network instance.
type Network struct {
	Generators []Generator `mapstructure:"generators"`
}

// Model is the typed view of a validated Model instance.
type Model struct {
	Network  Network  `mapstructure:"network"`
	Scenario struct{} `mapstructure:"scenario"`
}

// AsGenerator decodes a validated instance into its typed form.
func AsGenerator(inst *model.Instance) (Generator, error) {
	var g Generator
	return g, decode(inst, GeneratorType.Name(), &g)
}

// AsModel decodes a validated instance into its typed form.
func AsModel(inst *model.Instance) (Model, error) {
	var m Model
	return m, decode(inst, ModelType.Name(), &m)
}

// decode canonicalizes an instance with internal field names and binds the
// result onto the target struct.
func decode(inst *model.Instance, want string, target any) error {
	if inst.Type().Name() != want {
		return fmt.Errorf("expected a %s instance, got %s", want, inst.Type().Name())
	}
	record := serialize.Serialize(inst, serialize.Options{})
	if err := mapstructure.Decode(record, target); err != nil {
		return fmt.Errorf("cannot decode %s instance: %w", want, err)
	}
	return nil
}
