package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var predictorsJSON bool

var predictorsCmd = &cobra.Command{
	Use:   "predictors",
	Short: "List loaded predictors",
	Long: `Lists the predictors built from the configuration, with their kind,
input features and the role the engine assigns them.`,
	Args: cobra.NoArgs,
	RunE: runPredictors,
}

func init() {
	predictorsCmd.Flags().BoolVar(&predictorsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(predictorsCmd)
}

// predictorRow is one listed predictor.
type predictorRow struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Roles    []string `json:"roles,omitempty"`
	Features []string `json:"features,omitempty"`
}

func runPredictors(cmd *cobra.Command, _ []string) error {
	if err := requireEngine(); err != nil {
		return err
	}
	if predictorCatalog == nil {
		return errors.New("predictor catalog not configured")
	}

	cfg := completionService.Config()
	infos := predictorCatalog.Describe()

	rows := make([]predictorRow, len(infos))
	for i, info := range infos {
		rows[i] = predictorRow{Name: info.Name, Kind: info.Kind, Features: info.Features}
		if info.Name == cfg.Regressor {
			rows[i].Roles = append(rows[i].Roles, "regressor")
		}
		if info.Name == cfg.Classifier {
			rows[i].Roles = append(rows[i].Roles, "classifier")
		}
	}

	if predictorsJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal predictors: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(rows) == 0 {
		cmd.Println("No predictors loaded.")
		return nil
	}

	cmd.Printf("%-16s %-10s %-22s %s\n", "NAME", "KIND", "ROLE", "FEATURES")
	for _, r := range rows {
		cmd.Printf("%-16s %-10s %-22s %s\n",
			r.Name, orDash(r.Kind), orDash(strings.Join(r.Roles, ",")), orDash(strings.Join(r.Features, ",")))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
