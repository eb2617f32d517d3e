//go:build windows

// ABOUTME: Windows binding for GetSysColor and GetSysColorBrush in user32.dll
// ABOUTME: Resolves the procs lazily; both calls are read-only and thread-safe
package syscolor

import (
	"golang.org/x/sys/windows"
)

var (
	moduser32            = windows.NewLazySystemDLL("user32.dll")
	procGetSysColor      = moduser32.NewProc("GetSysColor")
	procGetSysColorBrush = moduser32.NewProc("GetSysColorBrush")
)

var platform querier = user32{}

type user32 struct{}

func (user32) sysColor(index int32) uint32 {
	r, _, _ := procGetSysColor.Call(uintptr(index))
	return uint32(r)
}

// sysColorBrush returns the cached system brush handle, or 0 when the
// index is not supported. System brushes must not be deleted.
func (user32) sysColorBrush(index int32) uintptr {
	if procGetSysColorBrush.Find() != nil {
		return 0
	}
	r, _, _ := procGetSysColorBrush.Call(uintptr(index))
	return r
}
