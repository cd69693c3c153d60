//go:build windows

package granny

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapArena(size int) ([]byte, func() error, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return buf, func() error { return windows.VirtualFree(addr, 0, windows.MEM_RELEASE) }, nil
}
