// ABOUTME: Package documentation for the syscolor package
// ABOUTME: Describes the typed wrapper around the Win32 system color query

// Package syscolor reads the colors the user's Windows theme assigns to
// system UI elements (captions, window backgrounds, highlights, buttons).
//
// Usage:
//   - Pick a role from the Index constants: syscolor.ActiveCaption
//   - Query it: c, err := syscolor.Get(syscolor.ActiveCaption)
//   - Treat errors.Is(err, syscolor.ErrNotAvailable) as an ordinary branch,
//     or use syscolor.GetOr to fall back to a default color
//
// Every call reads the live theme. Nothing is cached, so two calls may return
// different colors if the user changes the theme in between. Get is safe for
// concurrent use.
//
// On platforms other than Windows every role reports ErrNotAvailable.
package syscolor
