// Package cli implements the litholog command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/core/ports/driving"
	"github.com/custodia-labs/litholog/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services wired by the composition root.
var (
	completionService driving.CompletionService
	predictorCatalog  driving.PredictorCatalog
	configStore       driven.ConfigStore
	tableReader       driven.TableReader
	exporter          driven.Exporter
)

// Persistent flags.
var (
	verbose   bool
	quiet     bool
	configDir string
)

// Services groups the engine-side dependencies of the commands.
type Services struct {
	Completion driving.CompletionService
	Predictors driving.PredictorCatalog
	Reader     driven.TableReader
	Exporter   driven.Exporter
}

// OpenConfigFunc opens the configuration store in dir. An empty dir
// selects the default location.
type OpenConfigFunc func(dir string) (driven.ConfigStore, error)

// BuildFunc constructs the engine services from the configuration.
type BuildFunc func(store driven.ConfigStore) (Services, error)

// DefaultsFunc returns the flattened values written by `config init`.
type DefaultsFunc func() map[string]any

var (
	openConfig     OpenConfigFunc
	buildEngine    BuildFunc
	configDefaults DefaultsFunc
)

var (
	errNoEngine = errors.New("completion service not configured")
	errNoConfig = errors.New("config store not configured")
	errNoReader = errors.New("table reader not configured")
)

var rootCmd = &cobra.Command{
	Use:   "litholog",
	Short: "Complete well logs and predict lithology",
	Long: `litholog reads depth-indexed well-log tables, imputes a missing bulk
density (RHOB) curve with a regression predictor and labels every depth
sample with a lithology predicted from DEPTH and GR.

Input is CSV with a header row. DEPTH and GR are required; RHOB is
optional. Column names are matched case-insensitively.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug and progress logs")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress warnings")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.litholog)")
}

// SetVersion sets the version reported by `litholog version`.
func SetVersion(v string) {
	version = v
}

// SetWiring registers the functions that open the configuration and
// build the engine. They run lazily, after flags are parsed.
func SetWiring(open OpenConfigFunc, build BuildFunc, defaults DefaultsFunc) {
	openConfig = open
	buildEngine = build
	configDefaults = defaults
}

// SetServices installs engine services directly.
func SetServices(s Services) {
	completionService = s.Completion
	predictorCatalog = s.Predictors
	tableReader = s.Reader
	exporter = s.Exporter
}

// SetConfigStore installs the configuration store directly.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to commands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func preRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetQuiet(quiet)
	return nil
}

// requireConfig opens the configuration store on first use.
func requireConfig() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	if openConfig == nil {
		return nil, errNoConfig
	}
	store, err := openConfig(configDir)
	if err != nil {
		return nil, err
	}
	configStore = store
	return store, nil
}

// requireEngine builds the engine services on first use.
func requireEngine() error {
	if completionService != nil {
		if tableReader == nil {
			return errNoReader
		}
		return nil
	}
	if buildEngine == nil {
		return errNoEngine
	}
	store, err := requireConfig()
	if err != nil {
		return err
	}
	s, err := buildEngine(store)
	if err != nil {
		return err
	}
	SetServices(s)
	if tableReader == nil {
		return errNoReader
	}
	return nil
}

// commandContext returns the command's context or a background context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
