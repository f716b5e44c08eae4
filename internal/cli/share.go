package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/share"
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode or decode shareable pairing links",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode <heading> <body>",
	Short: "Print a playground link for a pairing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		_, err = fmt.Fprintln(cmd.OutOrStdout(), e.pipeline.ShareLink(args[0], args[1]))
		return err
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <link|query>",
	Short: "Read the pairing from a link or query string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]

		var heading, body string
		if strings.Contains(raw, "://") {
			h, b, err := share.ParseLink(raw)
			if err != nil {
				return err
			}
			heading, body = h, b
		} else {
			h, b, ok := share.DecodeQuery(raw)
			if !ok {
				return share.ErrMissingParam
			}
			heading, body = h, b
		}

		fmt.Fprintf(cmd.OutOrStdout(), "heading: %s\nbody: %s\n", heading, body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
}
