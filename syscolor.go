// ABOUTME: Color query adapter translating roles into live system colors
// ABOUTME: Converts the platform's "no such color" signal into NotAvailableError
package syscolor

import (
	"errors"
	"fmt"
)

// ErrNotAvailable is matched by every error Get returns
var ErrNotAvailable = errors.New("system color not available")

// NotAvailableError reports a role with no color on this system.
// Not every role exists on every Windows version or theme.
type NotAvailableError struct {
	Index Index
}

func (e *NotAvailableError) Error() string {
	if e.Index.Valid() {
		return fmt.Sprintf("system color %s (%s) not available", e.Index, e.Index.Constant())
	}
	return fmt.Sprintf("system color %s not available", e.Index)
}

// Is makes errors.Is(err, ErrNotAvailable) match
func (e *NotAvailableError) Is(target error) bool {
	return target == ErrNotAvailable
}

// querier is the host primitive: GetSysColor plus GetSysColorBrush, whose
// NULL return is the only way to tell an unsupported index from black
type querier interface {
	sysColor(index int32) uint32
	sysColorBrush(index int32) uintptr
}

// Get returns the current theme color for idx.
// The returned error is always a *NotAvailableError.
func Get(idx Index) (Color, error) {
	return get(platform, idx)
}

// Lookup is Get in comma-ok form
func Lookup(idx Index) (Color, bool) {
	c, err := Get(idx)
	return c, err == nil
}

// GetOr returns the current color for idx, or fallback when it is not available
func GetOr(idx Index, fallback Color) Color {
	if c, err := Get(idx); err == nil {
		return c
	}
	return fallback
}

func get(q querier, idx Index) (Color, error) {
	if !idx.Valid() {
		return Color{}, &NotAvailableError{Index: idx}
	}

	value := idx.Value()
	if q.sysColorBrush(value) == 0 {
		return Color{}, &NotAvailableError{Index: idx}
	}

	return FromCOLORREF(q.sysColor(value)), nil
}
