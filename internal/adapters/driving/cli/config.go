package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and edit the TOML configuration file.

Keys use dot notation, for example:
  engine.regressor         predictor used to impute RHOB
  engine.classifier        predictor used for lithology
  engine.display_columns   columns shown in previews
  labels.<code>            lithology label for a class code
  predictors.<name>.kind   linear or logistic`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Values are typed on the way in:
true/false become booleans, numbers become numbers and comma-separated
values become lists.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing values")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := requireConfig()
	if err != nil {
		return err
	}

	keys := store.Keys("")
	if len(keys) == 0 {
		cmd.Println("No configuration set; built-in defaults apply.")
		cmd.Println("Run 'litholog config init' to write them to", store.Path())
		return nil
	}

	for _, k := range keys {
		v, _ := store.Get(k)
		cmd.Printf("%s = %s\n", k, formatValue(v))
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := requireConfig()
	if err != nil {
		return err
	}
	cmd.Println(store.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := requireConfig()
	if err != nil {
		return err
	}
	v, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Println(formatValue(v))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := requireConfig()
	if err != nil {
		return err
	}
	key := strings.TrimSpace(args[0])
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("invalid key %q", args[0])
	}

	if err := store.Set(key, parseValue(args[1])); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %s\n", key, formatValue(parseValue(args[1])))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	store, err := requireConfig()
	if err != nil {
		return err
	}
	if configDefaults == nil {
		return errors.New("config defaults not configured")
	}
	if len(store.Keys("")) > 0 && !configForce {
		return fmt.Errorf("%s already has values; use --force to overwrite", store.Path())
	}

	if err := store.SetAll(configDefaults()); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", store.Path())
	return nil
}

// parseValue converts command line text into a typed config value.
func parseValue(raw string) any {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		nums := make([]float64, 0, len(parts))
		strs := make([]string, 0, len(parts))
		numeric := true
		for _, p := range parts {
			p = strings.TrimSpace(p)
			strs = append(strs, p)
			if f, err := strconv.ParseFloat(p, 64); err == nil && numeric {
				nums = append(nums, f)
			} else {
				numeric = false
			}
		}
		if numeric {
			return nums
		}
		return strs
	}

	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// formatValue renders a config value on one line.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
