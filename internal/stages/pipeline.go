// Package stages provides the dataset enrichment pipeline and its stages.
package stages

import (
	"context"
	"fmt"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.StagePipeline = (*Pipeline)(nil)

// Pipeline chains multiple Stages and runs them in order.
// The record count is checked after every stage and must not change.
type Pipeline struct {
	stages []driven.Stage
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Process runs the dataset through all stages in order.
// The first failing stage aborts the run; no later stage sees the dataset.
func (p *Pipeline) Process(ctx context.Context, ds *domain.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: dataset is nil", domain.ErrInvalidInput)
	}

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		before := ds.Len()
		logger.Debug("stage %s: %d records in", stage.Name(), before)
		if err := stage.Process(ctx, ds); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		if after := ds.Len(); after != before {
			return fmt.Errorf("stage %s: record count changed from %d to %d", stage.Name(), before, after)
		}
	}

	return nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
