// ABOUTME: Shared markdown rendering using glamour
// ABOUTME: Provides terminal-friendly markdown output with auto-styling
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
	xterm "golang.org/x/term"
)

// RenderMarkdown renders markdown content for terminal display.
// When raw is true, returns content unchanged (for piping).
// Falls back to raw content on rendering errors.
func RenderMarkdown(content string, raw bool) string {
	if raw {
		return content
	}

	style := glamour.WithAutoStyle()
	if colorDisabled() {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

// IsTerminal reports whether w is an interactive terminal.
// Buffers and pipes are not, so piped output stays plain.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
