package predictors

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/core/ports/driving"
)

// Ensure Registry implements the interfaces.
var (
	_ driven.PredictorRegistry = (*Registry)(nil)
	_ driving.PredictorCatalog = (*Registry)(nil)
)

// Registry is the process-wide set of loaded predictors. It is built once
// at startup and never mutated, so concurrent reads need no locking.
type Registry struct {
	predictors map[string]driven.Predictor
}

// NewRegistry creates a registry from the given predictors.
// Names must be unique and non-empty.
func NewRegistry(ps ...driven.Predictor) (*Registry, error) {
	r := &Registry{
		predictors: make(map[string]driven.Predictor, len(ps)),
	}
	for _, p := range ps {
		if p == nil {
			return nil, fmt.Errorf("%w: nil predictor", domain.ErrInvalidInput)
		}
		name := p.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: predictor has no name", domain.ErrInvalidInput)
		}
		if _, dup := r.predictors[name]; dup {
			return nil, fmt.Errorf("%w: duplicate predictor %q", domain.ErrInvalidInput, name)
		}
		r.predictors[name] = p
	}
	return r, nil
}

// Get returns the predictor registered under name.
func (r *Registry) Get(name string) (driven.Predictor, error) {
	p, ok := r.predictors[name]
	if !ok {
		return nil, fmt.Errorf("predictor %q: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.predictors))
	for name := range r.predictors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered predictors.
func (r *Registry) Len() int {
	return len(r.predictors)
}

// Describe lists the registered predictors in name order. Kind and
// features are filled in when the predictor reports them.
func (r *Registry) Describe() []domain.PredictorInfo {
	names := r.Names()
	infos := make([]domain.PredictorInfo, len(names))
	for i, name := range names {
		p := r.predictors[name]
		infos[i].Name = name
		if d, ok := p.(driven.Describer); ok {
			infos[i].Kind = d.Kind()
		}
		if f, ok := p.(driven.FeatureNamer); ok {
			infos[i].Features = f.FeatureNames()
		}
	}
	return infos
}
