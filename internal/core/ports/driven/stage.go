package driven

import (
	"context"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

// Stage is one enrichment pass over a dataset (density completion,
// lithology labelling). Stages mutate the dataset in place and must
// never add or remove records.
type Stage interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Process enriches the dataset. On error the dataset must be
	// considered unusable.
	Process(ctx context.Context, ds *domain.Dataset) error
}

// StagePipeline runs stages in order over a dataset.
type StagePipeline interface {
	Process(ctx context.Context, ds *domain.Dataset) error
}
