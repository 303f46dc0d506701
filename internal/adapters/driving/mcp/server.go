package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for litholog.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "litholog",
		Version: Version,
	}

	opts := &mcp.ServerOptions{
		Instructions: instructions(ports.Completion.Config()),
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells clients what the tool expects, using the engine's
// configured curve names.
func instructions(cfg domain.EngineConfig) string {
	required := cfg.RequiredCurves
	if len(required) == 0 {
		required = []string{domain.CurveDepth, domain.CurveGammaRay}
	}

	var b strings.Builder
	b.WriteString("litholog completes well logs. Call complete_well_log with CSV text ")
	fmt.Fprintf(&b, "whose header includes %s (matched case-insensitively). ", strings.Join(required, ", "))
	fmt.Fprintf(&b, "When %s is absent it is imputed and density_source is %q. ", domain.CurveDensity, domain.DensityImputed)
	fmt.Fprintf(&b, "Every row gets a %s label. ", domain.ColumnLithology)
	if len(cfg.DisplayColumns) > 0 {
		fmt.Fprintf(&b, "display_only returns %s. ", strings.Join(cfg.DisplayColumns, ", "))
	}
	fmt.Fprintf(&b, "At most %d rows are returned unless limit is set; truncated marks a cut result. ", DefaultRowLimit)
	b.WriteString("Read litholog://predictors and litholog://config for the loaded models and settings.")
	return b.String()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
