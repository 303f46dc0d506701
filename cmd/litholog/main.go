// Command litholog completes well logs and predicts lithology.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/litholog/internal/adapters/driven/config/file"
	"github.com/custodia-labs/litholog/internal/adapters/driving/cli"
	"github.com/custodia-labs/litholog/internal/app"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(app.OpenConfig, build, file.DefaultValues)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func build(store driven.ConfigStore) (cli.Services, error) {
	c, err := app.Build(store)
	if err != nil {
		return cli.Services{}, err
	}
	return cli.Services{
		Completion: c.Engine,
		Predictors: c.Predictors,
		Reader:     c.Reader,
		Exporter:   c.Writer,
	}, nil
}
