package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	config "github.com/inference-gateway/cheat/config"
	app "github.com/inference-gateway/cheat/internal/app"
	display "github.com/inference-gateway/cheat/internal/display"
	domain "github.com/inference-gateway/cheat/internal/domain"
	logger "github.com/inference-gateway/cheat/internal/logger"
	shortcuts "github.com/inference-gateway/cheat/internal/shortcuts"
	styles "github.com/inference-gateway/cheat/internal/ui/styles"
	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"
	zap "go.uber.org/zap"

	_ "github.com/inference-gateway/cheat/internal/display/native"
	_ "github.com/inference-gateway/cheat/internal/display/x11"
)

var rootCmd = &cobra.Command{
	Use:   "cheat",
	Short: "A searchable keyboard shortcut overlay",
	Long: `cheat covers the terminal with a searchable list of keyboard shortcuts
loaded from a JSON or YAML file. Type to filter the list and press Esc to close it.

The shortcut file defaults to shortcuts.json next to the cheat binary.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, err := prepareOverlay(cmd)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), overlay)
	},
}

// Execute runs the root command and exits with status 1 on failure
func Execute() {
	defer logger.Close()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, formatError(err))
		}
		logger.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "shortcut file (default is shortcuts.json next to the binary)")
	rootCmd.PersistentFlags().String("settings", "", fmt.Sprintf("settings file (default is %s)", config.DefaultSettingsPath()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")

	rootCmd.Flags().String("theme", "", "color theme (tokyo-night, github-light, dracula)")
	rootCmd.Flags().String("focus", "", "focus strategy (auto, none, x11, native)")
}

// reportedError wraps an error the command already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// formatError keeps shortcut file errors in their plain form
func formatError(err error) string {
	var notFound *domain.ConfigNotFoundError
	var malformed *domain.ConfigMalformedError
	if errors.As(err, &notFound) || errors.As(err, &malformed) {
		return err.Error()
	}
	return fmt.Sprintf("Error: %v", err)
}

// loadSettings merges the settings file with the command flags and
// initializes logging
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()

	bindings := map[string]string{
		"shortcuts.path": "file",
		"ui.theme":       "theme",
		"focus.strategy": "focus",
		"logging.debug":  "verbose",
		"logging.file":   "log-file",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}

	settingsPath, _ := cmd.Flags().GetString("settings")
	cfg, err := config.Load(v, settingsPath)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Logging.Debug, cfg.Logging.File); err != nil {
		return nil, err
	}

	return cfg, nil
}

// shortcutPath returns the configured shortcut file or the default one
func shortcutPath(cfg *config.Config) string {
	if cfg.Shortcuts.Path != "" {
		return cfg.Shortcuts.Path
	}
	return shortcuts.DefaultPath()
}

// loadShortcuts resolves settings and reads the shortcut file
func loadShortcuts(cmd *cobra.Command) (*config.Config, domain.ShortcutList, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}

	path := shortcutPath(cfg)
	list, err := shortcuts.Load(cmd.Context(), path)
	if err != nil {
		logger.Error("Failed to load shortcuts", zap.String("path", path), zap.Error(err))
		return nil, nil, err
	}

	return cfg, list, nil
}

// prepareOverlay builds the overlay without starting the terminal program
func prepareOverlay(cmd *cobra.Command) (*app.OverlayApplication, error) {
	cfg, list, err := loadShortcuts(cmd)
	if err != nil {
		return nil, err
	}

	themes := domain.NewThemeProvider()
	if err := themes.SetTheme(cfg.UI.Theme); err != nil {
		return nil, err
	}

	focus, err := display.Resolve(cfg.Focus.Strategy)
	if err != nil {
		return nil, err
	}

	ctx := logger.ContextWithLogger(cmd.Context(), zap.L())
	logger.L(ctx).Info("Starting overlay",
		zap.Int("shortcuts", list.Len()),
		zap.String("theme", themes.GetCurrentThemeName()),
		zap.String("focus", focus.Name()))

	return app.NewOverlayApplication(ctx, list, styles.NewProvider(themes), app.Options{
		Placeholder:  cfg.UI.Placeholder,
		WidthPercent: cfg.UI.WidthPercent,
		ShowHelp:     cfg.UI.ShowHelp,
		Focus:        focus,
	}), nil
}
