package predictors

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// BuilderFunc creates a Predictor from its declarative spec.
type BuilderFunc func(spec domain.PredictorSpec) (driven.Predictor, error)

// Factory maps predictor kinds to their builders.
// It allows predictors to be constructed from configuration.
type Factory struct {
	builders map[string]BuilderFunc
}

// NewFactory creates a new, empty factory.
func NewFactory() *Factory {
	return &Factory{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a builder for a predictor kind.
func (f *Factory) Register(kind string, builder BuilderFunc) {
	f.builders[kind] = builder
}

// Build creates a predictor from spec.
// Returns domain.ErrUnsupportedType if the kind is not registered.
func (f *Factory) Build(spec domain.PredictorSpec) (driven.Predictor, error) {
	builder, ok := f.builders[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("predictor %q: kind %q: %w", spec.Name, spec.Kind, domain.ErrUnsupportedType)
	}
	p, err := builder(spec)
	if err != nil {
		return nil, fmt.Errorf("predictor %q: %w", spec.Name, err)
	}
	return p, nil
}

// BuildRegistry builds every spec and returns them as an immutable registry.
func (f *Factory) BuildRegistry(specs []domain.PredictorSpec) (*Registry, error) {
	ps := make([]driven.Predictor, 0, len(specs))
	for _, spec := range specs {
		p, err := f.Build(spec)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return NewRegistry(ps...)
}

// Has returns true if a builder for kind is registered.
func (f *Factory) Has(kind string) bool {
	_, ok := f.builders[kind]
	return ok
}

// Kinds returns all registered kinds in sorted order.
func (f *Factory) Kinds() []string {
	kinds := make([]string, 0, len(f.builders))
	for k := range f.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
