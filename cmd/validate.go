package cmd

import (
	"fmt"

	icons "github.com/inference-gateway/cheat/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the shortcut file loads",
	Long: `Load the shortcut file the overlay would use and report how many entries it holds.
Exits with status 1 when the file is missing or malformed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, list, err := loadShortcuts(cmd)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", icons.StyledCrossMark(), formatError(err))
			return &reportedError{err: err}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d shortcuts\n", icons.StyledCheckMark(), shortcutPath(cfg), list.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
