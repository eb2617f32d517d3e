//go:build !windows

// ABOUTME: Stub query for platforms without Win32 system colors
// ABOUTME: Reports every role as not available so callers take their fallback
package syscolor

var platform querier = absent{}

type absent struct{}

func (absent) sysColor(int32) uint32 { return 0 }

func (absent) sysColorBrush(int32) uintptr { return 0 }
