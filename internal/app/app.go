// Package app assembles litholog's components from configuration.
package app

import (
	"fmt"

	"github.com/custodia-labs/litholog/internal/adapters/driven/config/file"
	"github.com/custodia-labs/litholog/internal/adapters/driven/csvlog"
	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/core/services"
	"github.com/custodia-labs/litholog/internal/logger"
	"github.com/custodia-labs/litholog/internal/normalisers/columns"
	"github.com/custodia-labs/litholog/internal/predictors"
	"github.com/custodia-labs/litholog/internal/stages"
)

// Components holds everything built from one configuration.
type Components struct {
	Config     domain.EngineConfig
	Engine     *services.Engine
	Predictors *predictors.Registry
	Pipeline   *stages.Pipeline
	Reader     *csvlog.Reader
	Writer     *csvlog.Writer
}

// OpenConfig opens the TOML configuration in dir, or the default
// location when dir is empty.
func OpenConfig(dir string) (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return store, nil
}

// Build loads the predictors once and wires the stage pipeline and
// engine around them.
func Build(store driven.ConfigStore) (*Components, error) {
	cfg, specs, err := file.LoadEngineConfig(store)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Regressor == cfg.Classifier {
		logger.Warn("regressor and classifier both use predictor %q", cfg.Regressor)
	}

	factory := predictors.NewFactory()
	predictors.RegisterDefaults(factory)
	registry, err := factory.BuildRegistry(specs)
	if err != nil {
		return nil, fmt.Errorf("building predictors: %w", err)
	}
	logger.Debug("loaded predictors: %v", registry.Names())

	stageRegistry := stages.NewRegistry()
	stages.RegisterDefaults(stageRegistry)

	// Validate before building stages so role errors are reported as
	// configuration errors rather than missing predictors.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	pipeline, err := stageRegistry.BuildPipeline(stages.Env{Config: cfg, Predictors: registry})
	if err != nil {
		return nil, fmt.Errorf("building stages: %w", err)
	}

	engine, err := services.NewEngine(cfg, columns.New(), pipeline)
	if err != nil {
		return nil, err
	}

	var writerOpts []csvlog.WriterOption
	if !file.OutputBOM(store) {
		writerOpts = append(writerOpts, csvlog.WithoutBOM())
	}

	return &Components{
		Config:     cfg,
		Engine:     engine,
		Predictors: registry,
		Pipeline:   pipeline,
		Reader:     csvlog.NewReader(),
		Writer:     csvlog.NewWriter(writerOpts...),
	}, nil
}
