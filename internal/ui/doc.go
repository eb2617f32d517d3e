// ABOUTME: Package documentation for the ui package
// ABOUTME: Describes the purpose and usage patterns for terminal styling

// Package ui provides consistent terminal styling and output formatting
// for syscolor CLI commands using lipgloss.
//
// Usage:
//   - Use Print* functions for standalone messages: ui.PrintSuccess(w, "Saved")
//   - Use inline helpers for composing output: fmt.Fprintln(w, ui.Bold("Role:"), ui.Muted(detail))
//   - Use Swatch to show a system color as a filled block
//   - Respects NO_COLOR environment variable for accessibility
package ui
