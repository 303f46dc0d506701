package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/plot"
)

// DefaultPreviewRows is the number of processed rows shown by default.
const DefaultPreviewRows = 500

var (
	completeOut         string
	completeDisplayOnly bool
	completeHead        int
	completeJSON        bool
	completePlot        bool
)

var completeCmd = &cobra.Command{
	Use:   "complete [file]",
	Short: "Complete a well log and predict lithology",
	Long: `Reads a CSV well log, imputes RHOB when the curve is absent and adds a
Lithology_Predicted column for every depth sample.

A preview of the display columns is printed. Use --out to write the full
annotated table (every input column plus RHOB and Lithology_Predicted).
Pass "-" to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringVarP(&completeOut, "out", "o", "", "write the annotated CSV to this path")
	completeCmd.Flags().BoolVar(&completeDisplayOnly, "display-only", false, "export only the display columns")
	completeCmd.Flags().IntVar(&completeHead, "head", DefaultPreviewRows, "number of rows to preview (0 = none)")
	completeCmd.Flags().BoolVar(&completeJSON, "json", false, "print the preview as JSON")
	completeCmd.Flags().BoolVar(&completePlot, "plot", false, "print GR and RHOB log tracks after the preview")
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	if err := requireEngine(); err != nil {
		return err
	}

	ds, err := completeFile(commandContext(cmd), args[0], cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("complete failed: %w", err)
	}

	if ds.DensitySource == domain.DensityImputed {
		cmd.PrintErrln("RHOB not found: generated synthetic density values.")
	}

	if completeJSON {
		if err := outputPreviewJSON(cmd, ds, completeHead); err != nil {
			return err
		}
	} else if completeHead > 0 {
		outputPreviewTable(cmd, ds, completeHead)
	}

	if completePlot {
		out, err := plot.Tracks(ds, plot.Options{TrackWidth: trackWidth(cmd)})
		if err != nil {
			return err
		}
		cmd.Print(out)
	}

	if completeOut != "" {
		if err := exportFile(completeOut, ds, exportColumns(ds, completeDisplayOnly)); err != nil {
			return err
		}
		cmd.PrintErrf("Wrote %d rows to %s\n", ds.Len(), completeOut)
	}

	return nil
}

// previewJSON is the JSON form of a preview.
type previewJSON struct {
	RunID         string     `json:"run_id"`
	Source        string     `json:"source"`
	DensitySource string     `json:"density_source"`
	Columns       []string   `json:"columns"`
	Rows          [][]string `json:"rows"`
	Count         int        `json:"count"`
}

func outputPreviewJSON(cmd *cobra.Command, ds *domain.AnnotatedDataset, head int) error {
	n := previewLen(ds, head)
	out := previewJSON{
		RunID:         ds.RunID,
		Source:        ds.Source,
		DensitySource: string(ds.DensitySource),
		Columns:       ds.DisplayColumns,
		Rows:          make([][]string, n),
		Count:         ds.Len(),
	}
	for i := 0; i < n; i++ {
		out.Rows[i] = ds.Row(i, ds.DisplayColumns)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preview: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

var (
	previewHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	previewCell   = lipgloss.NewStyle().Padding(0, 1)
)

func outputPreviewTable(cmd *cobra.Command, ds *domain.AnnotatedDataset, head int) {
	if ds.Len() == 0 {
		cmd.Println("No records.")
		return
	}

	n := previewLen(ds, head)
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = ds.Row(i, ds.DisplayColumns)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(ds.DisplayColumns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return previewHeader
			}
			return previewCell
		})

	cmd.Println(t.Render())
	if n < ds.Len() {
		cmd.Printf("Showing %d of %d rows.\n", n, ds.Len())
	}
}

func previewLen(ds *domain.AnnotatedDataset, head int) int {
	if head < 0 {
		head = 0
	}
	return min(head, ds.Len())
}
