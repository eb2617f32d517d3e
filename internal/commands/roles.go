// ABOUTME: Roles command printing a reference of every system color role
// ABOUTME: Builds a markdown table and renders it with glamour on a terminal
package commands

import (
	"fmt"
	"strings"

	"github.com/claudeup/syscolor"
	"github.com/claudeup/syscolor/internal/ui"
	"github.com/spf13/cobra"
)

var rolesRaw bool

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Describe every system color role",
	Long: `Print a reference table of system color roles, their Win32 constants,
index values, aliases, and the UI elements they color.

Output is rendered markdown on a terminal and plain markdown when piped.`,
	Args: cobra.NoArgs,
	RunE: runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)

	rolesCmd.Flags().BoolVar(&rolesRaw, "raw", false, "Print unrendered markdown")
}

func runRoles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	raw := rolesRaw || !ui.IsTerminal(out)
	fmt.Fprint(out, ui.RenderMarkdown(rolesMarkdown(), raw))
	return nil
}

func rolesMarkdown() string {
	var b strings.Builder
	b.WriteString("# System Color Roles\n\n")
	b.WriteString("| Role | Constant | Index | Aliases | Colors |\n")
	b.WriteString("|------|----------|------:|---------|--------|\n")
	for _, idx := range syscolor.All() {
		aliases := strings.Join(idx.Aliases(), ", ")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(&b, "| `%s` | `%s` | %d | %s | %s |\n",
			idx.Slug(), idx.Constant(), idx.Value(), aliases, idx.Description())
	}
	return b.String()
}
