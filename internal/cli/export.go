package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/export"
)

var exportOut string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <format> <heading> <body>",
	Short: "Export a pairing as CSS, JSON, an embed URL or an HTML snippet",
	Long: `Export renders a pairing for use elsewhere.

Formats: css, json, embed, html

Example:
  notmytype export css "Playfair Display" Inter
  notmytype export json Lora Inter --out font-pairing.json`,
	Args: cobra.ExactArgs(3),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout (\"auto\" uses the format's default name)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(args[0])
	if err != nil {
		return err
	}

	content, err := export.Render(format, args[1], args[2])
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if exportOut == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	path := exportOut
	if path == "auto" {
		path = format.Filename()
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}
