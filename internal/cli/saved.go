package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/render"
)

var (
	saveTags    []string
	saveUseCase string
	savedJSON   bool
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save <heading> <body>",
	Short: "Save a pairing to the local store",
	Long: `Save stores a pairing under an id derived from both font names.
Saving the same pairing again replaces it and refreshes its timestamp.

Example:
  notmytype save "Space Grotesk" Inter --tag tech --tag dashboard`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

// savedCmd represents the saved command
var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved pairings",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved pairings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		saved, err := e.pipeline.Store().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list saved pairings: %w", err)
		}

		if savedJSON {
			return render.JSON(cmd.OutOrStdout(), saved)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), e.renderer.Saved(saved))
		return err
	},
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved pairing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.pipeline.Store().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
		return nil
	},
}

var savedExistsCmd = &cobra.Command{
	Use:   "exists <id>",
	Short: "Report whether a pairing is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		ok, err := e.pipeline.Store().Exists(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("check %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(savedCmd)
	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedDeleteCmd)
	savedCmd.AddCommand(savedExistsCmd)

	saveCmd.Flags().StringSliceVarP(&saveTags, "tag", "t", nil, "tag to attach (repeatable)")
	saveCmd.Flags().StringVar(&saveUseCase, "use-case", "", "free-form note on where the pairing is used")
	saveCmd.Flags().BoolVar(&savedJSON, "json", false, "print JSON")
	savedListCmd.Flags().BoolVar(&savedJSON, "json", false, "print JSON")
}

func runSave(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	saved, err := e.pipeline.Store().Save(cmd.Context(), model.FontPairing{
		HeadingFont: args[0],
		BodyFont:    args[1],
		Tags:        saveTags,
		UseCase:     saveUseCase,
	})
	if err != nil {
		return fmt.Errorf("save pairing: %w", err)
	}

	if savedJSON {
		return render.JSON(cmd.OutOrStdout(), saved)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", saved.ID)
	return nil
}
