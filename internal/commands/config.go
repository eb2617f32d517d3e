// ABOUTME: Config command group for export preferences and fallback colors
// ABOUTME: Reads and writes config.json in the syscolor home directory
package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/claudeup/syscolor"
	"github.com/claudeup/syscolor/internal/backup"
	"github.com/claudeup/syscolor/internal/config"
	"github.com/claudeup/syscolor/internal/events"
	"github.com/claudeup/syscolor/internal/palette"
	"github.com/claudeup/syscolor/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage syscolor preferences and fallback colors",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetFormatCmd = &cobra.Command{
	Use:   "set-format <format>",
	Short: "Set the default export format",
	Long:  "Set the format 'syscolor export' uses when --format is not given (" + formatList() + ").",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetFormat,
}

var configSetFallbackCmd = &cobra.Command{
	Use:   "set-fallback <role> <color>",
	Short: "Substitute a color for a role the system does not define",
	Long: `Record a color to use when a role is not available on this system.

Fallbacks apply to list, get, show, and export. A role the system does
define always reports its live color.`,
	Example: `  syscolor config set-fallback menu-bar "#F0F0F0"
  syscolor config set-fallback COLOR_3DDKSHADOW 696969`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSetFallback,
}

var configUnsetFallbackCmd = &cobra.Command{
	Use:   "unset-fallback <role>",
	Short: "Remove the fallback color for a role",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnsetFallback,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	Long:  "Restore the default configuration. The previous config.json is kept in backups/ for 'syscolor config restore'.",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

var historyLimit int

var configHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent configuration changes",
	Long: `Show the operations that changed config.json, most recent first.

Changes are logged to events/operations.log in the syscolor home.`,
	Args: cobra.NoArgs,
	RunE: runConfigHistory,
}

var configRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the configuration saved by the last reset",
	Args:  cobra.NoArgs,
	RunE:  runConfigRestore,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetFormatCmd)
	configCmd.AddCommand(configSetFallbackCmd)
	configCmd.AddCommand(configUnsetFallbackCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configRestoreCmd)
	configCmd.AddCommand(configHistoryCmd)

	configHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of changes to show (0 for all)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	home := syscolorHome()

	fmt.Fprintln(out, ui.RenderSection("Configuration", -1))
	fmt.Fprintln(out, ui.RenderDetail("File", config.ConfigPath(home)))

	format := cfg.Preferences.Format
	if format == "" {
		format = string(palette.DefaultFormat) + " " + ui.Muted("(default)")
	}
	fmt.Fprintln(out, ui.RenderDetail("Export format", format))
	fmt.Fprintln(out)

	fmt.Fprintln(out, ui.RenderSection("Fallbacks", len(cfg.Fallbacks)))
	if len(cfg.Fallbacks) == 0 {
		ui.PrintMuted(out, "  No fallbacks configured.")
		return nil
	}

	roles := make([]syscolor.Index, 0, len(cfg.Fallbacks))
	for idx := range cfg.Fallbacks {
		roles = append(roles, idx)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	for _, idx := range roles {
		fmt.Fprintln(out, ui.Indent(fmt.Sprintf("%s %s %s", ui.SymbolArrow, idx.Slug(), colorValue(cfg.Fallbacks[idx], out)), 1))
	}
	return nil
}

func runConfigSetFormat(cmd *cobra.Command, args []string) error {
	format, err := palette.ParseFormat(args[0])
	if err != nil {
		return err
	}

	return updateConfig(cmd, map[string]string{"format": string(format)}, func(cfg *config.Config) error {
		cfg.Preferences.Format = string(format)
		ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Default export format set to %s", format))
		return nil
	})
}

func runConfigSetFallback(cmd *cobra.Command, args []string) error {
	idx, err := syscolor.ParseIndex(args[0])
	if err != nil {
		return err
	}
	c, err := syscolor.ParseHex(args[1])
	if err != nil {
		return err
	}

	return updateConfig(cmd, map[string]string{"role": idx.Slug(), "color": c.String()}, func(cfg *config.Config) error {
		cfg.SetFallback(idx, c)
		ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Fallback for %s set to %s", idx.Slug(), c))
		return nil
	})
}

func runConfigUnsetFallback(cmd *cobra.Command, args []string) error {
	idx, err := syscolor.ParseIndex(args[0])
	if err != nil {
		return err
	}

	return updateConfig(cmd, map[string]string{"role": idx.Slug()}, func(cfg *config.Config) error {
		if !cfg.RemoveFallback(idx) {
			ui.PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("No fallback configured for %s", idx.Slug()))
			return nil
		}
		ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed fallback for %s", idx.Slug()))
		return nil
	})
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !ui.Confirm(cmd.InOrStdin(), out, "Reset configuration to defaults?", false) {
		ui.PrintInfo(out, "Configuration unchanged.")
		return nil
	}

	home := syscolorHome()
	path := config.ConfigPath(home)
	backupPath, err := backup.Save(home, path)
	if err != nil {
		return fmt.Errorf("failed to back up config: %w", err)
	}

	err = events.ForHome(home).RecordFileWrite("config reset", path, nil, func() error {
		return config.Save(home, config.DefaultConfig())
	})
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ui.PrintSuccess(out, "Configuration reset to defaults")
	if backupPath != "" {
		logger.Debug("saved config backup", "path", backupPath)
		ui.PrintMuted(out, "  Previous config saved. Undo with 'syscolor config restore'.")
	}
	return nil
}

func runConfigRestore(cmd *cobra.Command, args []string) error {
	home := syscolorHome()
	path := config.ConfigPath(home)

	err := events.ForHome(home).RecordFileWrite("config restore", path, nil, func() error {
		return backup.Restore(home, path)
	})
	if err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}
	if _, err := config.Load(home); err != nil {
		return fmt.Errorf("restored config is invalid: %w", err)
	}

	ui.PrintSuccess(cmd.OutOrStdout(), "Configuration restored from "+backup.Path(home, filepath.Base(path)))
	return nil
}

// updateConfig loads the config, applies fn, and saves the result,
// recording the write in the operations log under the command's name
func updateConfig(cmd *cobra.Command, details map[string]string, fn func(cfg *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := fn(cfg); err != nil {
		return err
	}

	home := syscolorHome()
	err = events.ForHome(home).RecordFileWrite("config "+cmd.Name(), config.ConfigPath(home), details, func() error {
		return config.Save(home, cfg)
	})
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func runConfigHistory(cmd *cobra.Command, args []string) error {
	home := syscolorHome()
	recorded, err := events.ForHome(home).Query(events.EventFilters{
		File:  config.ConfigPath(home),
		Limit: historyLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.RenderSection("Configuration History", len(recorded)))
	fmt.Fprintln(out)

	if len(recorded) == 0 {
		ui.PrintMuted(out, "  No configuration changes recorded.")
		return nil
	}

	rows := make([][]string, 0, len(recorded))
	for _, e := range recorded {
		change := e.ChangeType
		if e.Error != "" {
			change = ui.Error(ui.SymbolError + " " + e.Error)
		}
		rows = append(rows, []string{
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Operation,
			change,
			formatDetails(e.Details),
		})
	}
	fmt.Fprintln(out, ui.RenderTable([]string{"When", "Operation", "Change", "Details"}, rows))
	return nil
}

// formatDetails renders event details as sorted key=value pairs
func formatDetails(details map[string]string) string {
	if len(details) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+details[k])
	}
	return strings.Join(parts, " ")
}
