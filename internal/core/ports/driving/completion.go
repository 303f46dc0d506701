package driving

import (
	"context"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

// CompletionService completes and annotates well logs.
// One call is one request: it owns the dataset it builds and returns
// a read-only result or a single fatal error.
type CompletionService interface {
	// CompleteTable normalises the header, builds a dataset from the rows
	// and runs the full pipeline.
	CompleteTable(ctx context.Context, source string, header []string, rows [][]string) (*domain.AnnotatedDataset, error)

	// Complete runs the pipeline over an already constructed dataset.
	Complete(ctx context.Context, source string, ds *domain.Dataset) (*domain.AnnotatedDataset, error)

	// Config returns the engine configuration in use.
	Config() domain.EngineConfig
}
