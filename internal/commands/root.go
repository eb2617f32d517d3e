// ABOUTME: Root command and CLI initialization for syscolor
// ABOUTME: Sets up cobra command structure, global flags, and debug logging
package commands

import (
	"log/slog"

	"github.com/claudeup/syscolor"
	"github.com/claudeup/syscolor/internal/config"
	"github.com/claudeup/syscolor/internal/palette"
	"github.com/claudeup/syscolor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	verbose bool
)

// querySysColor reads one live system color; replaced in tests
var querySysColor palette.QueryFunc = syscolor.Get

// logger is configured by the root command before any subcommand runs
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "syscolor",
	Short: "Inspect the Windows theme's system colors",
	Long: `syscolor reads the colors the current Windows theme assigns to
system UI elements such as captions, window backgrounds, and highlights.

It can:
  - List every system color role with a swatch
  - Print individual colors for use in scripts
  - Export the palette as JSON, YAML, CSS custom properties, or env lines

Roles the running Windows version does not define are reported as not
available. Configure fallbacks to substitute a color for them.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	// Set up custom help template with lipgloss styling
	ui.SetupHelpTemplate(rootCmd)

	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "syscolor home directory (default $SYSCOLOR_HOME or ~/.syscolor)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVarP(&config.YesFlag, "yes", "y", false, "Skip all prompts, use defaults")
}

func initLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// syscolorHome resolves the --home flag, falling back to the environment
func syscolorHome() string {
	if homeDir != "" {
		return homeDir
	}
	return config.MustHome()
}

// loadConfig reads config.json from the syscolor home
func loadConfig() (*config.Config, error) {
	home := syscolorHome()
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", config.ConfigPath(home), "fallbacks", len(cfg.Fallbacks))
	return cfg, nil
}

// takePalette snapshots every role, filling gaps from configured fallbacks
func takePalette(cfg *config.Config) (palette.Palette, error) {
	p, err := palette.Take(querySysColor, cfg)
	if err != nil {
		return nil, err
	}
	available, fallback, missing := p.Counts()
	logger.Debug("queried system colors", "available", available, "fallback", fallback, "missing", missing)
	return p, nil
}

// parseRoles resolves role names given on the command line
func parseRoles(args []string) ([]syscolor.Index, error) {
	roles := make([]syscolor.Index, 0, len(args))
	for _, arg := range args {
		idx, err := syscolor.ParseIndex(arg)
		if err != nil {
			return nil, err
		}
		roles = append(roles, idx)
	}
	return roles, nil
}
