package granny

import "unsafe"

// maxCStringLen bounds the scan for a terminator. Runtime strings are names
// and file paths; anything longer indicates a bad pointer.
const maxCStringLen = 1 << 20

const minValidAddress = 4096

// CstringToGo converts a null-terminated C string to a Go string.
// Returns an empty string if ptr is null or falls in the unmapped first page.
func CstringToGo(ptr uintptr) string {
	if ptr < minValidAddress {
		return ""
	}

	base := unsafe.Pointer(ptr)
	n := 0
	for n < maxCStringLen && *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(base), n))
}

// GoToCstring converts a Go string to a null-terminated byte slice suitable for passing to the runtime.
// Returns the byte slice (which must be kept alive by the caller) and a uintptr to its first byte.
//
// Example usage:
//
//	nameBytes, namePtr := GoToCstring("model.gr2")
//	file := readEntireFileFunc(namePtr)
//	runtime.KeepAlive(nameBytes)
func GoToCstring(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}
