package mcp

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/core/ports/driving"
)

// mockCompletionService is a mock implementation of driving.CompletionService.
type mockCompletionService struct {
	dataset *domain.AnnotatedDataset
	err     error
	cfg     domain.EngineConfig

	gotSource string
	gotHeader []string
	gotRows   [][]string
}

func (m *mockCompletionService) CompleteTable(
	_ context.Context,
	source string,
	header []string,
	rows [][]string,
) (*domain.AnnotatedDataset, error) {
	m.gotSource, m.gotHeader, m.gotRows = source, header, rows
	return m.dataset, m.err
}

func (m *mockCompletionService) Complete(
	_ context.Context,
	_ string,
	_ *domain.Dataset,
) (*domain.AnnotatedDataset, error) {
	return m.dataset, m.err
}

func (m *mockCompletionService) Config() domain.EngineConfig {
	return m.cfg
}

// mockCatalog is a mock implementation of driving.PredictorCatalog.
type mockCatalog struct {
	infos []domain.PredictorInfo
}

func (m *mockCatalog) Describe() []domain.PredictorInfo {
	return m.infos
}

// csvReader is a minimal driven.TableReader over encoding/csv.
type csvReader struct{}

func (csvReader) Read(r io.Reader) ([]string, [][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	return records[0], records[1:], nil
}

var (
	_ driving.CompletionService = (*mockCompletionService)(nil)
	_ driving.PredictorCatalog  = (*mockCatalog)(nil)
	_ driven.TableReader        = csvReader{}
)

// annotatedOf builds a completed dataset with n records.
func annotatedOf(n int) *domain.AnnotatedDataset {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			Depth:     float64(1000 + i),
			GammaRay:  40,
			Density:   2.25,
			Lithology: "Sandstone",
			Raw: map[string]string{
				"DEPTH": strconv.Itoa(1000 + i),
				"GR":    "40",
				"CALI":  "8.5",
			},
		}
	}
	return domain.NewAnnotatedDataset(
		"run-1", "well.csv", domain.DensityImputed,
		[]string{"DEPTH", "GR", "RHOB", "Lithology_Predicted"},
		[]string{"DEPTH", "GR", "CALI", "RHOB", "Lithology_Predicted"},
		records,
	)
}
