package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/litholog/internal/logger"
)

// DefaultSettle is how long a file must be quiet before it is processed.
const DefaultSettle = 500 * time.Millisecond

var (
	watchOutDir      string
	watchSettle      time.Duration
	watchExisting    bool
	watchDisplayOnly bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Complete well logs as they are dropped into a directory",
	Long: `Watches a directory and completes every CSV file created or modified in
it. Annotated files are written to --out-dir (default <dir>/annotated) as
<name>_annotated.csv. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchOutDir, "out-dir", "", "directory for annotated files (default <dir>/annotated)")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", DefaultSettle, "quiet period before a changed file is processed")
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "also process CSV files already in the directory")
	watchCmd.Flags().BoolVar(&watchDisplayOnly, "display-only", false, "export only the display columns")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch failed: %s is not a directory", dir)
	}

	if err := requireEngine(); err != nil {
		return err
	}

	outDir := watchOutDir
	if outDir == "" {
		outDir = filepath.Join(dir, "annotated")
	}

	ctx := commandContext(cmd)
	handle := func(path string) {
		r := processFile(ctx, path, outDir, watchDisplayOnly)
		if r.err != nil {
			cmd.PrintErrf("FAIL %s: %v\n", r.input, r.err)
			return
		}
		cmd.Printf("ok   %s -> %s (%d rows, RHOB %s)\n", r.input, r.output, r.rows, r.density)
	}

	if watchExisting {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("watch failed: %w", err)
		}
		for _, e := range entries {
			p := filepath.Join(dir, e.Name())
			if !e.IsDir() && isInputCSV(p) {
				handle(p)
			}
		}
	}

	cmd.PrintErrf("Watching %s (Ctrl+C to stop)\n", dir)
	return watchDir(ctx, dir, watchSettle, handle)
}

// watchDir calls handle for each CSV file in dir that is created or
// written, once it has been quiet for settle. It returns when ctx is done.
func watchDir(ctx context.Context, dir string, settle time.Duration, handle func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	if settle <= 0 {
		settle = DefaultSettle
	}
	ticker := time.NewTicker(max(settle/2, 10*time.Millisecond))
	defer ticker.Stop()

	pending := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if path, ok := watchTarget(event); ok {
				pending[path] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) >= settle {
					delete(pending, path)
					handle(path)
				}
			}
		}
	}
}

// watchTarget returns the file to process for an event, if any.
// Only creates and writes of visible CSV files count; our own exports
// and directories are skipped.
func watchTarget(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if !isInputCSV(event.Name) {
		return "", false
	}
	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return event.Name, true
}

// isInputCSV reports whether path names a CSV file we should complete.
func isInputCSV(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if !strings.EqualFold(filepath.Ext(base), ".csv") {
		return false
	}
	return !isAnnotated(base)
}
