package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	config "github.com/inference-gateway/cheat/config"
	domain "github.com/inference-gateway/cheat/internal/domain"
	shortcuts "github.com/inference-gateway/cheat/internal/shortcuts"
	icons "github.com/inference-gateway/cheat/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a settings file and an example shortcut file",
	Long: `Write the default settings file and a starter shortcuts.json next to it.
The settings point the overlay at the new shortcut file, so running cheat
afterwards shows the example list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initializeSettings(cmd)
	},
}

func init() {
	initCmd.Flags().Bool("overwrite", false, "Overwrite existing files if they already exist")
	rootCmd.AddCommand(initCmd)
}

// exampleShortcuts seeds the starter shortcut file
var exampleShortcuts = domain.ShortcutList{
	{Key: "Ctrl+C", Description: "Copy"},
	{Key: "Ctrl+V", Description: "Paste"},
	{Key: "Ctrl+Z", Description: "Undo"},
	{Key: "Ctrl+Shift+Z", Description: "Redo"},
	{Key: "Alt+Tab", Description: "Switch windows"},
	{Key: "/", Description: "Search"},
	{Key: "Esc", Description: "Close"},
}

func initializeSettings(cmd *cobra.Command) error {
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		settingsPath = config.DefaultSettingsPath()
	}
	// shortcuts.path is stored absolute
	shortcutsPath, err := filepath.Abs(filepath.Join(filepath.Dir(settingsPath), shortcuts.DefaultFileName))
	if err != nil {
		return fmt.Errorf("failed to resolve shortcut file path: %w", err)
	}

	if !overwrite {
		for _, path := range []string{settingsPath, shortcutsPath} {
			if err := ensureNotExist(path); err != nil {
				return err
			}
		}
	}

	cfg := config.DefaultConfig()
	cfg.Shortcuts.Path = shortcutsPath
	if err := cfg.SaveConfig(settingsPath); err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}

	if err := writeExampleShortcuts(shortcutsPath); err != nil {
		return fmt.Errorf("failed to create shortcut file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Initialized cheat\n", icons.StyledCheckMark())
	fmt.Fprintf(out, "   Created: %s\n", settingsPath)
	fmt.Fprintf(out, "   Created: %s\n", shortcutsPath)
	return nil
}

func ensureNotExist(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%s already exists (use --overwrite to replace it)", path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
}

func writeExampleShortcuts(path string) error {
	doc := struct {
		Shortcuts domain.ShortcutList `json:"shortcuts"`
	}{Shortcuts: exampleShortcuts}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
