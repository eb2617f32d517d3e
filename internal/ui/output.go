// ABOUTME: Print helper functions for consistent CLI output
// ABOUTME: Provides success, error, warning, info, and muted output styles
package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/claudeup/syscolor"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// PrintSuccess writes a success message with checkmark symbol
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(SymbolSuccess+" "+msg))
}

// PrintError writes an error message with X symbol
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(SymbolError+" "+msg))
}

// PrintWarning writes a warning message with warning symbol
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(SymbolWarning+" "+msg))
}

// PrintInfo writes an info message with info symbol
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, infoStyle.Render(SymbolInfo+" "+msg))
}

// PrintMuted writes a muted/secondary message
func PrintMuted(w io.Writer, msg string) {
	fmt.Fprintln(w, mutedStyle.Render(msg))
}

// FormatError renders a command error for stderr.
// Unavailable system colors get a hint about fallbacks.
func FormatError(err error) string {
	msg := errorStyle.Render(SymbolError + " " + err.Error())
	if errors.Is(err, syscolor.ErrNotAvailable) {
		msg += "\n" + mutedStyle.Render("  Use --fallback or 'syscolor config set-fallback' to substitute a color.")
	}
	return msg
}

// Muted returns a string styled as muted (for inline use)
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Bold returns a string styled as bold (for inline use)
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Success returns a string styled as success (for inline use)
func Success(s string) string {
	return successStyle.Render(s)
}

// Error returns a string styled as error (for inline use)
func Error(s string) string {
	return errorStyle.Render(s)
}

// Warning returns a string styled as warning (for inline use)
func Warning(s string) string {
	return warningStyle.Render(s)
}

// Info returns a string styled as info (for inline use)
func Info(s string) string {
	return infoStyle.Render(s)
}
