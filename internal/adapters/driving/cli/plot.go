package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/litholog/internal/plot"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 80

// plotReserved is the width taken by the depth and lithology columns.
const plotReserved = 26

var (
	plotRows  int
	plotWidth int
)

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Draw GR and RHOB log tracks",
	Long: `Completes a well log and draws gamma ray and bulk density tracks against
depth, shallowest sample at the top, with the predicted lithology beside
each row. Long logs are down-sampled to --rows rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().IntVar(&plotRows, "rows", plot.DefaultRows, "maximum number of rows to draw")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "track width in cells (default fits the terminal)")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	if err := requireEngine(); err != nil {
		return err
	}

	ds, err := completeFile(commandContext(cmd), args[0], cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("plot failed: %w", err)
	}

	width := plotWidth
	if width <= 0 {
		width = trackWidth(cmd)
	}

	out, err := plot.Tracks(ds, plot.Options{Rows: plotRows, TrackWidth: width})
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}

// trackWidth splits the terminal width between the two curve tracks.
func trackWidth(cmd *cobra.Command) int {
	total := defaultTermWidth
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			total = w
		}
	}
	w := (total - plotReserved) / 2
	if w < 10 {
		return 10
	}
	return min(w, 60)
}
