package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/litholog/internal/adapters/driving/tui"
)

// viewCmd represents the view command.
var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Browse a completed well log in the terminal",
	Long: `Completes a well log and opens it in an interactive table.

Controls:
  ↑/k, ↓/j - Move between rows
  g, G     - Jump to top / bottom
  c        - Toggle display and all columns
  r        - Rerun completion
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireEngine(); err != nil {
		return err
	}

	header, rows, err := readTable(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	input := tui.Table{Source: sourceName(args[0]), Header: header, Rows: rows}
	if err := tui.Run(commandContext(cmd), tui.NewPorts(completionService), input); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
