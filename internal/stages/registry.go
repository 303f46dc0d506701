package stages

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// Env carries what a stage builder may draw on.
type Env struct {
	Config     domain.EngineConfig
	Predictors driven.PredictorRegistry
}

// BuilderFunc creates a Stage from the engine environment.
type BuilderFunc func(env Env) (driven.Stage, error)

// Registry maps stage names to their builders.
// It allows the pipeline to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a stage builder to the registry.
// Name should be unique and match the stage's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a stage by name.
// Returns domain.ErrUnsupportedType if the stage name is not registered.
func (r *Registry) Build(name string, env Env) (driven.Stage, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("stage %q: %w", name, domain.ErrUnsupportedType)
	}
	return builder(env)
}

// BuildPipeline builds the stages named in env.Config.Stages, in order.
func (r *Registry) BuildPipeline(env Env) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range env.Config.Stages {
		stage, err := r.Build(name, env)
		if err != nil {
			return nil, err
		}
		p.Add(stage)
	}
	return p, nil
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
