package stages

import (
	"fmt"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/predictors"
	"github.com/custodia-labs/litholog/internal/stages/completion"
	"github.com/custodia-labs/litholog/internal/stages/lithology"
)

// RegisterDefaults registers all built-in stages with the registry.
// Call this during application initialisation to enable standard stages.
func RegisterDefaults(r *Registry) {
	r.Register(domain.StageCompletion, buildCompletion)
	r.Register(domain.StageLithology, buildLithology)
}

// buildCompletion wires the density completion stage to the regressor.
func buildCompletion(env Env) (driven.Stage, error) {
	p, err := lookup(env, env.Config.Regressor)
	if err != nil {
		return nil, err
	}
	return completion.New(predictors.NewAdapter(p, env.Config.Features), env.Config.Features), nil
}

// buildLithology wires the lithology stage to the classifier.
func buildLithology(env Env) (driven.Stage, error) {
	p, err := lookup(env, env.Config.Classifier)
	if err != nil {
		return nil, err
	}
	return lithology.New(predictors.NewAdapter(p, env.Config.Features), env.Config.Features, env.Config.Labels), nil
}

func lookup(env Env, name string) (driven.Predictor, error) {
	if env.Predictors == nil {
		return nil, fmt.Errorf("%w: no predictor registry", domain.ErrInvalidInput)
	}
	return env.Predictors.Get(name)
}
