package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/render"
)

var (
	concurrency  int
	batchJSON    bool
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Validate many pairings from a file in parallel",
	Long: `Batch validates one "heading,body" pair per line:
- Blank lines and lines starting with # are skipped
- Duplicate pairs are validated once
- Results are printed in input order

Example:
  notmytype batch pairs.txt
  notmytype batch pairs.txt --concurrency 8 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (0 uses config)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "print JSON")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
}

type batchEntry struct {
	Line       int                     `json:"line"`
	Heading    string                  `json:"heading"`
	Body       string                  `json:"body"`
	Validation *model.ValidationResult `json:"validation,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	results, err := e.pipeline.BatchValidator(concurrency).ValidateFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}
	e.logger.Debug("batch complete", "file", args[0], "pairs", len(results))

	out := cmd.OutOrStdout()
	if batchJSON {
		entries := make([]batchEntry, 0, len(results))
		for _, r := range results {
			entry := batchEntry{Line: r.Pair.Line, Heading: r.Pair.Heading, Body: r.Pair.Body}
			if r.Error != nil {
				entry.Error = r.Error.Error()
			} else {
				v := r.Validation
				entry.Validation = &v
			}
			entries = append(entries, entry)
		}
		return render.JSON(out, entries)
	}

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
			fmt.Fprintf(out, "✗ line %d: %s / %s: %v\n", r.Pair.Line, r.Pair.Heading, r.Pair.Body, r.Error)
			continue
		}
		fmt.Fprintf(out, "line %d: %s / %s → %s\n", r.Pair.Line, r.Pair.Heading, r.Pair.Body, r.Validation.Score)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d pairs not validated", failures, len(results))
	}
	return nil
}
