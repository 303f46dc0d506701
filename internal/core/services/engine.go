package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/core/ports/driving"
	"github.com/custodia-labs/litholog/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.CompletionService = (*Engine)(nil)

// Engine completes and annotates well logs. It holds no per-request state,
// so one Engine may serve concurrent requests as long as its pipeline's
// predictors are read-only.
type Engine struct {
	cfg        domain.EngineConfig
	normaliser driven.HeaderNormaliser
	pipeline   driven.StagePipeline
	newRunID   func() string
}

// Option configures the engine.
type Option func(*Engine)

// WithRunIDFunc overrides run ID generation.
func WithRunIDFunc(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newRunID = fn
		}
	}
}

// NewEngine creates a new engine. The configuration is validated once here.
func NewEngine(
	cfg domain.EngineConfig,
	normaliser driven.HeaderNormaliser,
	pipeline driven.StagePipeline,
	opts ...Option,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if normaliser == nil {
		return nil, errors.New("engine: header normaliser is required")
	}
	if pipeline == nil {
		return nil, errors.New("engine: stage pipeline is required")
	}

	e := &Engine{
		cfg:        cfg,
		normaliser: normaliser,
		pipeline:   pipeline,
		newRunID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() domain.EngineConfig {
	return e.cfg
}

// CompleteTable normalises the header, builds the dataset and completes it.
func (e *Engine) CompleteTable(ctx context.Context, source string, header []string, rows [][]string) (*domain.AnnotatedDataset, error) {
	columns := e.normaliser.Normalise(header)

	ds, err := domain.NewDataset(columns, rows)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", displaySource(source), err)
	}
	return e.Complete(ctx, source, ds)
}

// Complete validates required curves, runs every stage and aggregates the
// result. Any error aborts the request with no partial output.
func (e *Engine) Complete(ctx context.Context, source string, ds *domain.Dataset) (*domain.AnnotatedDataset, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: dataset is nil", domain.ErrInvalidInput)
	}

	runID := e.newRunID()
	log := logger.For(runID)
	logger.Section("Run " + runID)
	log.Info("%s: %d records, columns %v", displaySource(source), ds.Len(), ds.Columns)

	var missing []string
	for _, c := range e.cfg.RequiredCurves {
		if !ds.HasCurve(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("completing %s: %w", displaySource(source), &domain.SchemaError{Missing: missing})
	}

	if err := e.pipeline.Process(ctx, ds); err != nil {
		return nil, fmt.Errorf("completing %s: %w", displaySource(source), err)
	}

	result, err := Aggregate(runID, source, ds, e.cfg.DisplayColumns)
	if err != nil {
		return nil, fmt.Errorf("completing %s: %w", displaySource(source), err)
	}

	log.Info("done: %d records, density %s", result.Len(), result.DensitySource)
	return result, nil
}

func displaySource(source string) string {
	if source == "" {
		return "input"
	}
	return source
}
