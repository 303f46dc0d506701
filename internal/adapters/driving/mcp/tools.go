package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultRowLimit caps the rows returned by complete_well_log.
const DefaultRowLimit = 500

// CompleteInput is the input schema for the complete_well_log tool.
type CompleteInput struct {
	CSV         string `json:"csv" jsonschema:"well log as CSV text with a header row; DEPTH and GR are required, RHOB is optional"`
	Source      string `json:"source,omitempty" jsonschema:"name of the log, used in logs and the result"`
	DisplayOnly bool   `json:"display_only,omitempty" jsonschema:"return only DEPTH, GR, RHOB and Lithology_Predicted"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of rows to return (default 500)"`
}

// CompleteOutput is the output schema for the complete_well_log tool.
type CompleteOutput struct {
	RunID         string     `json:"run_id"`
	Source        string     `json:"source"`
	DensitySource string     `json:"density_source"`
	Columns       []string   `json:"columns"`
	Rows          [][]string `json:"rows"`
	Count         int        `json:"count"`
	Truncated     bool       `json:"truncated,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "complete_well_log",
		Description: "Impute a missing RHOB curve and predict lithology for every depth sample",
	}, s.handleComplete)
}

// handleComplete handles the complete_well_log tool invocation.
func (s *Server) handleComplete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompleteInput,
) (*mcp.CallToolResult, CompleteOutput, error) {
	source := input.Source
	if source == "" {
		source = "mcp"
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRowLimit
	}

	header, rows, err := s.ports.Reader.Read(strings.NewReader(input.CSV))
	if err != nil {
		return nil, CompleteOutput{}, fmt.Errorf("reading csv: %w", err)
	}

	ds, err := s.ports.Completion.CompleteTable(ctx, source, header, rows)
	if err != nil {
		return nil, CompleteOutput{}, err
	}

	columns := ds.AllColumns
	if input.DisplayOnly {
		columns = ds.DisplayColumns
	}

	n := min(ds.Len(), limit)
	output := CompleteOutput{
		RunID:         ds.RunID,
		Source:        ds.Source,
		DensitySource: string(ds.DensitySource),
		Columns:       columns,
		Rows:          make([][]string, n),
		Count:         ds.Len(),
		Truncated:     n < ds.Len(),
	}
	for i := 0; i < n; i++ {
		output.Rows[i] = ds.Row(i, columns)
	}

	return nil, output, nil
}
