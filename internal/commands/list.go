// ABOUTME: List command showing every system color role with its current value
// ABOUTME: Renders swatches on a terminal and marks fallback or missing roles
package commands

import (
	"fmt"
	"strconv"

	"github.com/claudeup/syscolor/internal/palette"
	"github.com/claudeup/syscolor/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listAll      bool
	listNoSwatch bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List system colors defined by the current theme",
	Long: `Show each system color role with its Win32 constant and current value.

Roles the system does not define are hidden unless --all is given.
Colors taken from configured fallbacks are marked with ` + ui.SymbolFallback + `.`,
	Example: `  syscolor list
  syscolor list --all
  # Plain hex codes, e.g. for a light terminal theme
  syscolor list --no-swatch`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include roles with no color on this system")
	listCmd.Flags().BoolVar(&listNoSwatch, "no-swatch", false, "Print hex codes without color blocks")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p, err := takePalette(cfg)
	if err != nil {
		return fmt.Errorf("failed to read system colors: %w", err)
	}

	out := cmd.OutOrStdout()
	swatches := !listNoSwatch && ui.IsTerminal(out)

	shown := p
	if !listAll {
		shown = p.Resolved()
	}

	fmt.Fprintln(out, ui.RenderSection("System Colors", len(shown)))
	fmt.Fprintln(out)

	if len(shown) == 0 {
		ui.PrintInfo(out, "No system colors available on this system.")
		ui.PrintMuted(out, "Configure fallbacks with 'syscolor config set-fallback ROLE HEX'.")
		return nil
	}

	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{
			e.Index.Slug(),
			e.Index.Constant(),
			strconv.Itoa(int(e.Index.Value())),
			colorCell(e, swatches),
		})
	}
	fmt.Fprintln(out, ui.RenderTable([]string{"Role", "Constant", "Index", "Color"}, rows))

	_, fallback, missing := p.Counts()
	if fallback > 0 {
		ui.PrintMuted(out, fmt.Sprintf("%s %d from configured fallbacks", ui.SymbolFallback, fallback))
	}
	if missing > 0 && !listAll {
		ui.PrintMuted(out, fmt.Sprintf("%d roles not available on this system (use --all to show)", missing))
	}

	return nil
}

func colorCell(e palette.Entry, swatches bool) string {
	if !e.Resolved() {
		return ui.Muted(ui.SymbolMissing + " n/a")
	}

	cell := e.Color.String()
	if swatches {
		cell = ui.Swatch(e.Color)
	}
	if e.Fallback {
		cell += " " + ui.Warning(ui.SymbolFallback)
	}
	return cell
}
