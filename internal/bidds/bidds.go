// Package bidds declares the entity types of the power-network bid dataset
// model: a root Model composed of a Network (which aggregates Generators)
// and a Scenario.
//
// The declarations are plain descriptor tables; the validation engine,
// serializer and schema exporter all work from them. Adding an entity type
// means declaring fields here, not writing behavior.
package bidds

import (
	"github.com/gridds/bidds/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

var (
	// GeneratorType describes a single generating unit and the bus it
	// connects to.
	GeneratorType = schema.MustEntity("Generator",
		schema.Field{Name: "uid", Title: "uid", Required: true, Type: cty.String},
		schema.Field{Name: "bus", Title: "bus", Required: true, Type: cty.String},
	)

	// ScenarioType is reserved for scenario parameters; it currently
	// declares no fields, so any content is rejected.
	ScenarioType = schema.MustEntity("Scenario")

	// NetworkType aggregates the generators of the network.
	NetworkType = schema.MustEntity("Network",
		schema.Field{Name: "generators", Title: "generators", Required: true, Entity: GeneratorType, List: true},
	)

	// ModelType is the root entity type of a bid dataset file.
	ModelType = schema.MustEntity("Model",
		schema.Field{Name: "network", Title: "network", Required: true, Entity: NetworkType},
		schema.Field{Name: "scenario", Title: "scenario", Required: true, Entity: ScenarioType},
	)
)

// Register adds the bid dataset entity types to a registry.
func Register(r *schema.Registry) {
	r.MustAdd(GeneratorType)
	r.MustAdd(ScenarioType)
	r.MustAdd(NetworkType)
	r.MustAdd(ModelType)
}
