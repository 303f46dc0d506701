package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for litholog resources.
	uriScheme = "litholog://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "predictors",
		Name:        "predictors",
		Description: "Predictors loaded at startup",
		MIMEType:    "application/json",
	}, s.handlePredictorsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "config",
		Name:        "config",
		Description: "Engine configuration: predictor roles, labels and display columns",
		MIMEType:    "application/json",
	}, s.handleConfigResource)
}

// handlePredictorsResource returns the loaded predictors.
func (s *Server) handlePredictorsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := []domain.PredictorInfo{}
	if s.ports.Predictors != nil {
		infos = s.ports.Predictors.Describe()
	}
	return jsonResource(req.Params.URI, infos, "predictors")
}

// configInfo is the JSON view of the engine configuration.
type configInfo struct {
	RequiredCurves       []string          `json:"required_curves"`
	FeatureCurves        []string          `json:"feature_curves"`
	Labels               map[string]string `json:"labels"`
	DisplayColumns       []string          `json:"display_columns"`
	Regressor            string            `json:"regressor"`
	Classifier           string            `json:"classifier"`
	AllowSharedPredictor bool              `json:"allow_shared_predictor"`
	Stages               []string          `json:"stages"`
}

// handleConfigResource returns the engine configuration.
func (s *Server) handleConfigResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cfg := s.ports.Completion.Config()

	labels := make(map[string]string, len(cfg.Labels))
	for code, label := range cfg.Labels {
		labels[fmt.Sprint(code)] = label
	}

	return jsonResource(req.Params.URI, configInfo{
		RequiredCurves:       cfg.RequiredCurves,
		FeatureCurves:        cfg.Features.Curves,
		Labels:               labels,
		DisplayColumns:       cfg.DisplayColumns,
		Regressor:            cfg.Regressor,
		Classifier:           cfg.Classifier,
		AllowSharedPredictor: cfg.AllowSharedPredictor,
		Stages:               cfg.Stages,
	}, "config")
}

func jsonResource(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
