package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/render"
)

var (
	galleryQuery string
	galleryTag   string
	galleryTags  bool
	galleryJSON  bool
)

// galleryCmd represents the gallery command
var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Browse curated font pairings",
	Long: `Gallery lists the built-in pairings, optionally filtered.

--query matches heading, body or any tag (case-insensitive substring).
--tag keeps pairings carrying exactly that tag.

Example:
  notmytype gallery
  notmytype gallery --query serif --tag editorial
  notmytype gallery --tags`,
	Args: cobra.NoArgs,
	RunE: runGallery,
}

func init() {
	rootCmd.AddCommand(galleryCmd)

	galleryCmd.Flags().StringVarP(&galleryQuery, "query", "q", "", "search heading, body and tags")
	galleryCmd.Flags().StringVarP(&galleryTag, "tag", "t", "", "exact tag filter")
	galleryCmd.Flags().BoolVar(&galleryTags, "tags", false, "list available tags instead of pairings")
	galleryCmd.Flags().BoolVar(&galleryJSON, "json", false, "print JSON")
}

func runGallery(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	g := e.pipeline.Gallery()

	if galleryTags {
		tags := g.Tags()
		if galleryJSON {
			return render.JSON(out, tags)
		}
		_, err := fmt.Fprintln(out, strings.Join(tags, "\n"))
		return err
	}

	pairings := g.Search(galleryQuery, galleryTag)
	if galleryJSON {
		return render.JSON(out, pairings)
	}
	_, err = fmt.Fprint(out, e.renderer.Pairings(pairings))
	return err
}
