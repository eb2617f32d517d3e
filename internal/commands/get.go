// ABOUTME: Get command printing the current color of one or more roles
// ABOUTME: Falls back to --fallback or configured colors when a role is missing
package commands

import (
	"errors"
	"fmt"

	"github.com/claudeup/syscolor"
	"github.com/claudeup/syscolor/internal/config"
	"github.com/spf13/cobra"
)

var (
	getFallback string
	getRaw      bool
)

var getCmd = &cobra.Command{
	Use:   "get <role>...",
	Short: "Print the current color of system color roles",
	Long: `Print the current color of each role as #RRGGBB, one per line.

Roles accept the role name (ActiveCaption), its kebab form (active-caption),
or the Win32 constant with or without the COLOR_ prefix (COLOR_BTNFACE, 3dface).

When a role is not available the --fallback color is printed instead, then any
fallback set with 'syscolor config set-fallback'. Without either, the command
fails.`,
	Example: `  syscolor get window
  syscolor get active-caption gradient-active-caption
  # Raw COLORREF (0x00BBGGRR)
  syscolor get COLOR_HIGHLIGHT --raw
  syscolor get menu-bar --fallback "#F0F0F0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVar(&getFallback, "fallback", "", "Color to print when a role is not available (#RRGGBB)")
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "Print the packed COLORREF value instead of #RRGGBB")
}

func runGet(cmd *cobra.Command, args []string) error {
	roles, err := parseRoles(args)
	if err != nil {
		return err
	}

	var flagFallback *syscolor.Color
	if getFallback != "" {
		c, err := syscolor.ParseHex(getFallback)
		if err != nil {
			return fmt.Errorf("invalid --fallback: %w", err)
		}
		flagFallback = &c
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, idx := range roles {
		c, err := resolveColor(cfg, idx, flagFallback)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", idx.Slug(), err)
		}

		value := c.String()
		if getRaw {
			value = fmt.Sprintf("0x%08X", c.COLORREF())
		}

		if len(roles) > 1 {
			fmt.Fprintf(out, "%s %s\n", idx.Slug(), value)
		} else {
			fmt.Fprintln(out, value)
		}
	}

	return nil
}

// resolveColor queries idx, substituting the flag fallback first and the
// configured fallback second when the system has no color for it
func resolveColor(cfg *config.Config, idx syscolor.Index, flagFallback *syscolor.Color) (syscolor.Color, error) {
	c, err := querySysColor(idx)
	if err == nil {
		logger.Debug("read system color", "role", idx.Slug(), "color", c.String())
		return c, nil
	}
	if !errors.Is(err, syscolor.ErrNotAvailable) {
		return syscolor.Color{}, err
	}

	logger.Debug("system color not available", "role", idx.Slug(), "constant", idx.Constant())

	if flagFallback != nil {
		return *flagFallback, nil
	}
	if fb, ok := cfg.Fallback(idx); ok {
		logger.Debug("using configured fallback", "role", idx.Slug(), "color", fb.String())
		return fb, nil
	}
	return syscolor.Color{}, err
}
