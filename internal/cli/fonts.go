package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/catalog"
	"github.com/ppiankov/notmytype/internal/render"
)

var (
	fontsCategory string
	fontsJSON     bool
	fontsTimeout  time.Duration
)

// fontsCmd represents the fonts command
var fontsCmd = &cobra.Command{
	Use:   "fonts [query]",
	Short: "Search the Google Fonts catalog",
	Long: `Fonts lists catalog families. Without a query the most popular
families are shown. Requires a Google Fonts API key
(catalog.api_key or GOOGLE_FONTS_API_KEY).

Categories: ` + strings.Join(catalog.Categories(), ", ") + `

Example:
  notmytype fonts
  notmytype fonts grotesk --category sans-serif`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFonts,
}

func init() {
	rootCmd.AddCommand(fontsCmd)

	fontsCmd.Flags().StringVarP(&fontsCategory, "category", "c", "", "only show this category")
	fontsCmd.Flags().BoolVar(&fontsJSON, "json", false, "print JSON")
	fontsCmd.Flags().DurationVar(&fontsTimeout, "timeout", time.Minute, "catalog lookup timeout")
}

func runFonts(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), fontsTimeout)
	defer cancel()

	var query string
	if len(args) == 1 {
		query = args[0]
	}

	fonts := catalog.FilterByCategory(e.pipeline.Catalog().Search(ctx, query), fontsCategory)
	if fontsJSON {
		return render.JSON(cmd.OutOrStdout(), fonts)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), e.renderer.Fonts(fonts))
	return err
}
