// ABOUTME: One-shot snapshot of every system color role for display and export
// ABOUTME: Applies configured fallbacks to roles the system does not define
package palette

import (
	"errors"

	"github.com/claudeup/syscolor"
)

// QueryFunc reads one role; syscolor.Get in production
type QueryFunc func(syscolor.Index) (syscolor.Color, error)

// Fallbacks supplies replacement colors for unavailable roles
type Fallbacks interface {
	Fallback(idx syscolor.Index) (syscolor.Color, bool)
}

// Entry is the outcome for a single role
type Entry struct {
	Index     syscolor.Index
	Color     syscolor.Color
	Available bool // the system returned a color
	Fallback  bool // Color came from configuration
}

// Resolved reports whether the entry carries a usable color
func (e Entry) Resolved() bool {
	return e.Available || e.Fallback
}

// Palette is a snapshot of all roles in Win32 index order
type Palette []Entry

// Take queries every role once. fallbacks may be nil.
func Take(query QueryFunc, fallbacks Fallbacks) (Palette, error) {
	p := make(Palette, 0, len(syscolor.All()))

	for _, idx := range syscolor.All() {
		entry := Entry{Index: idx}

		color, err := query(idx)
		switch {
		case err == nil:
			entry.Color = color
			entry.Available = true
		case errors.Is(err, syscolor.ErrNotAvailable):
			if fallbacks != nil {
				if fb, ok := fallbacks.Fallback(idx); ok {
					entry.Color = fb
					entry.Fallback = true
				}
			}
		default:
			return nil, err
		}

		p = append(p, entry)
	}

	return p, nil
}

// Resolved returns only entries with a usable color
func (p Palette) Resolved() Palette {
	out := make(Palette, 0, len(p))
	for _, e := range p {
		if e.Resolved() {
			out = append(out, e)
		}
	}
	return out
}

// Counts returns how many roles the system defines, how many were filled
// from fallbacks, and how many have no color at all
func (p Palette) Counts() (available, fallback, missing int) {
	for _, e := range p {
		switch {
		case e.Available:
			available++
		case e.Fallback:
			fallback++
		default:
			missing++
		}
	}
	return
}
