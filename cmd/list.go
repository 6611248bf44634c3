package cmd

import (
	"fmt"
	"io"
	"strings"

	domain "github.com/inference-gateway/cheat/internal/domain"
	shortcuts "github.com/inference-gateway/cheat/internal/shortcuts"
	colors "github.com/inference-gateway/cheat/internal/ui/styles/colors"
	runewidth "github.com/mattn/go-runewidth"
	cobra "github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the shortcuts without opening the overlay",
	Long: `Print the shortcut list as aligned text. With --query only the entries whose key or
description contains the query (ignoring case) are printed, in file order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, list, err := loadShortcuts(cmd)
		if err != nil {
			return err
		}

		query, _ := cmd.Flags().GetString("query")
		color, _ := cmd.Flags().GetBool("color")

		printShortcuts(cmd.OutOrStdout(), shortcuts.Filter(list, query), color)
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("query", "q", "", "only print shortcuts matching this text")
	listCmd.Flags().Bool("color", false, "highlight keys with ANSI colors")
	rootCmd.AddCommand(listCmd)
}

// printShortcuts writes one entry per line with descriptions aligned
func printShortcuts(w io.Writer, list domain.ShortcutList, color bool) {
	keyWidth := 0
	for _, entry := range list {
		keyWidth = max(keyWidth, runewidth.StringWidth(entry.Key))
	}

	for _, entry := range list {
		pad := strings.Repeat(" ", keyWidth-runewidth.StringWidth(entry.Key)+2)
		k := entry.Key
		if color {
			k = colors.CreateBoldText(colors.CreateColoredText(k, colors.AccentColor))
		}
		fmt.Fprintf(w, "%s%s%s\n", k, pad, entry.Description)
	}
}
