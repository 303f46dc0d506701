package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/logger"
)

var (
	batchOutDir      string
	batchJobs        int
	batchDisplayOnly bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Complete several well logs concurrently",
	Long: `Completes each input file independently and writes <name>_annotated.csv
next to it, or into --out-dir. A failing file does not stop the others;
failures are reported at the end. Inputs that would write the same
annotated file are not processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory for annotated files (default: next to each input)")
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", runtime.NumCPU(), "number of files processed at once")
	batchCmd.Flags().BoolVar(&batchDisplayOnly, "display-only", false, "export only the display columns")
	rootCmd.AddCommand(batchCmd)
}

// batchResult is the outcome for one input file.
type batchResult struct {
	input   string
	output  string
	rows    int
	density domain.DensitySource
	err     error
}

func runBatch(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		if a == stdinName {
			return errors.New("batch reads files only; use complete for standard input")
		}
	}
	if err := requireEngine(); err != nil {
		return err
	}

	results := processFiles(commandContext(cmd), args, batchOutDir, batchJobs, batchDisplayOnly)

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			cmd.PrintErrf("FAIL %s: %v\n", r.input, r.err)
			continue
		}
		cmd.Printf("ok   %s -> %s (%d rows, RHOB %s)\n", r.input, r.output, r.rows, r.density)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// processFiles completes inputs with at most jobs running at once.
// Results are returned in input order.
func processFiles(ctx context.Context, inputs []string, outDir string, jobs int, displayOnly bool) []batchResult {
	results := make([]batchResult, len(inputs))
	collisions := outputCollisions(inputs, outDir)

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, input := range inputs {
		if err, ok := collisions[i]; ok {
			results[i] = batchResult{input: input, err: err}
			continue
		}
		g.Go(func() error {
			// Per-file failures are recorded, not returned, so one bad
			// file does not cancel the rest.
			results[i] = processFile(ctx, input, outDir, displayOnly)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// outputCollisions finds inputs whose annotated files would land on the
// same path. None of the colliding inputs are processed.
func outputCollisions(inputs []string, outDir string) map[int]error {
	byOutput := make(map[string][]int, len(inputs))
	for i, input := range inputs {
		out := filepath.Clean(annotatedPath(input, outDir))
		byOutput[out] = append(byOutput[out], i)
	}

	collisions := make(map[int]error)
	for out, idx := range byOutput {
		if len(idx) < 2 {
			continue
		}
		names := make([]string, len(idx))
		for j, i := range idx {
			names[j] = inputs[i]
		}
		for _, i := range idx {
			collisions[i] = fmt.Errorf("output %s is shared by %s", out, strings.Join(names, ", "))
		}
	}
	return collisions
}

func processFile(ctx context.Context, input, outDir string, displayOnly bool) batchResult {
	res := batchResult{input: input}
	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}

	log := logger.For(sourceName(input))
	log.Info("processing %s", input)

	ds, err := completeFile(ctx, input, nil)
	if err != nil {
		res.err = err
		return res
	}

	res.output = annotatedPath(input, outDir)
	if err := exportFile(res.output, ds, exportColumns(ds, displayOnly)); err != nil {
		res.err = err
		return res
	}

	res.rows = ds.Len()
	res.density = ds.DensitySource
	log.Info("wrote %d rows to %s", res.rows, res.output)
	return res
}
