// ABOUTME: Export command writing the current palette in a machine-readable format
// ABOUTME: Supports JSON, YAML, CSS custom properties, and env assignments
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/claudeup/syscolor/internal/palette"
	"github.com/claudeup/syscolor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportPrefix string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current system colors",
	Long: `Write every available system color in a machine-readable format.

The format comes from --format, then the config's preferred format, then json.
Roles without a color are skipped unless a fallback is configured for them.`,
	Example: `  syscolor export
  syscolor export --format css --output theme.css
  # Shell variables named THEME_WINDOW, THEME_HIGHLIGHT, ...
  syscolor export --format env --prefix THEME_`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: "+formatList())
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", "", "Name prefix for css and env formats")
}

func formatList() string {
	names := make([]string, 0, len(palette.Formats()))
	for _, f := range palette.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format := palette.DefaultFormat
	switch {
	case exportFormat != "":
		if format, err = palette.ParseFormat(exportFormat); err != nil {
			return err
		}
	case cfg.Preferences.Format != "":
		if format, err = palette.ParseFormat(cfg.Preferences.Format); err != nil {
			return fmt.Errorf("invalid format in config: %w", err)
		}
	}

	p, err := takePalette(cfg)
	if err != nil {
		return fmt.Errorf("failed to read system colors: %w", err)
	}

	opts := palette.ExportOptions{Format: format, Prefix: exportPrefix}

	if exportOutput == "" {
		return palette.Export(cmd.OutOrStdout(), p, opts)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	if err := palette.Export(f, p, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	logger.Debug("exported palette", "path", exportOutput, "format", format)
	ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Exported %d colors to %s", len(p.Resolved()), exportOutput))
	return nil
}
