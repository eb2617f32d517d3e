// ABOUTME: Custom help template for Cobra commands with lipgloss styling
// ABOUTME: Provides consistent, colorful help output across all commands
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	helpHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo)

	helpCommandStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

var helpFuncs = map[string]any{
	"styleHeading": helpHeadingStyle.Render,
	"styleCommand": helpCommandStyle.Render,
	"styleDesc":    helpDescStyle.Render,
	"styleExample": styleExample,
}

// SetupHelpTemplate installs the styled help and usage templates on cmd;
// subcommands inherit them
func SetupHelpTemplate(cmd *cobra.Command) {
	for name, fn := range helpFuncs {
		cobra.AddTemplateFunc(name, fn)
	}
	cmd.SetUsageTemplate(helpTemplate)
	cmd.SetHelpTemplate(helpTemplate)
}

// styleExample mutes "#" comment lines and highlights command lines
func styleExample(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
			lines[i] = helpDescStyle.Render(line)
		default:
			lines[i] = helpCommandStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

const helpTemplate = `{{if .Long}}{{.Long}}{{else}}{{.Short}}{{end}}

{{styleHeading "Usage:"}}
  {{styleCommand .UseLine}}{{if .HasAvailableSubCommands}}
  {{styleCommand .CommandPath}} {{styleDesc "[command]"}}{{end}}{{if gt (len .Aliases) 0}}

{{styleHeading "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{styleHeading "Examples:"}}
{{styleExample .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{styleHeading "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{styleCommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{styleHeading "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{styleHeading "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{styleCommand (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`
