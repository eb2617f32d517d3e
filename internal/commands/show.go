// ABOUTME: Show command displaying everything known about a single role
// ABOUTME: Prints constant, index, aliases, description, and the resolved color
package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/claudeup/syscolor"
	"github.com/claudeup/syscolor/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <role>",
	Short: "Show details for a single system color role",
	Example: `  syscolor show highlight
  syscolor show COLOR_3DFACE`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	idx, err := syscolor.ParseIndex(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.RenderHeader(idx.String()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderDetail("Role", idx.Slug()))
	fmt.Fprintln(out, ui.RenderDetail("Constant", idx.Constant()))
	fmt.Fprintln(out, ui.RenderDetail("Index", strconv.Itoa(int(idx.Value()))))
	if aliases := idx.Aliases(); len(aliases) > 0 {
		fmt.Fprintln(out, ui.RenderDetail("Aliases", strings.Join(aliases, ", ")))
	}
	fmt.Fprintln(out, ui.RenderDetail("Description", idx.Description()))

	live, err := querySysColor(idx)
	switch {
	case err == nil:
		fmt.Fprintln(out, ui.RenderDetail("Color", colorValue(live, out)+" "+describeSource(false)))
		fmt.Fprintln(out, ui.RenderDetail("COLORREF", fmt.Sprintf("0x%08X", live.COLORREF())))
	case errors.Is(err, syscolor.ErrNotAvailable):
		if fb, ok := cfg.Fallback(idx); ok {
			fmt.Fprintln(out, ui.RenderDetail("Color", colorValue(fb, out)+" "+describeSource(true)))
		} else {
			fmt.Fprintln(out, ui.RenderDetail("Color", ui.Muted(ui.SymbolMissing+" not available on this system")))
		}
	default:
		return fmt.Errorf("failed to read %s: %w", idx.Slug(), err)
	}

	return nil
}

// colorValue renders a swatch on a terminal and the bare hex code otherwise
func colorValue(c syscolor.Color, out io.Writer) string {
	if ui.IsTerminal(out) {
		return ui.Swatch(c)
	}
	return c.String()
}

// describeSource labels where a resolved color came from
func describeSource(fromFallback bool) string {
	if fromFallback {
		return ui.Warning(ui.SymbolFallback + " fallback")
	}
	return ui.Success(ui.SymbolSuccess + " system")
}
