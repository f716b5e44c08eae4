package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/render"
)

var (
	validateJSON     bool
	validateCritique bool
	validateTimeout  time.Duration
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <heading> <body>",
	Short: "Validate a heading/body font pairing",
	Long: `Validate classifies both fonts and runs the five pairing checks.

Example:
  notmytype validate "Playfair Display" Inter
  notmytype validate Lora Oswald --json
  notmytype validate "Space Grotesk" Inter --critique`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the report as JSON")
	validateCmd.Flags().BoolVar(&validateCritique, "critique", false, "ask the configured LLM for a note (never changes the score)")
	validateCmd.Flags().DurationVar(&validateTimeout, "timeout", time.Minute, "timeout for the optional critique")
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), validateTimeout)
	defer cancel()

	heading, body := args[0], args[1]
	report := e.pipeline.Validate(ctx, heading, body, validateCritique)

	if validateJSON {
		return render.JSON(cmd.OutOrStdout(), report)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), e.renderer.Report(report, e.pipeline.ShareLink(heading, body)))
	return err
}
