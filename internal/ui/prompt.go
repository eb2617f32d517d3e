// ABOUTME: Interactive prompt UI functions for user input
// ABOUTME: Handles yes/no confirmations with a --yes bypass
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/claudeup/syscolor/internal/config"
)

// Confirm asks a yes/no question on out and reads the answer from in.
// Returns true when --yes is set, defaultYes on empty input or read errors.
func Confirm(in io.Reader, out io.Writer, prompt string, defaultYes bool) bool {
	if config.YesFlag {
		return true
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprintf(out, "%s %s: ", prompt, hint)

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return defaultYes
	}

	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes
	}

	return input == "y" || input == "yes"
}
