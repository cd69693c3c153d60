package granny

import (
	"testing"
	"unsafe"
)

// testArena hands out memory outside the Go heap so tests can build the
// structures the runtime would return and read them back through uintptr
// fields, the same way package code sees runtime memory.
type testArena struct {
	t    *testing.T
	buf  []byte
	used uintptr
}

func newTestArena(t *testing.T, size int) *testArena {
	t.Helper()
	buf, release, err := mapArena(size)
	if err != nil {
		t.Fatalf("failed to map test arena: %v", err)
	}
	t.Cleanup(func() {
		if err := release(); err != nil {
			t.Errorf("failed to unmap test arena: %v", err)
		}
	})
	return &testArena{t: t, buf: buf}
}

// alloc returns the address of size zeroed bytes aligned to 8.
func (a *testArena) alloc(size uintptr) uintptr {
	a.t.Helper()
	a.used = (a.used + 7) &^ 7
	if size == 0 {
		size = 1
	}
	if a.used+size > uintptr(len(a.buf)) {
		a.t.Fatalf("test arena exhausted: need %d bytes, %d left", size, uintptr(len(a.buf))-a.used)
	}
	addr := uintptr(unsafe.Pointer(&a.buf[a.used]))
	a.used += size
	return addr
}

func (a *testArena) cstring(s string) uintptr {
	addr := a.alloc(uintptr(len(s) + 1))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(s)), s)
	return addr
}

func arenaNew[T any](a *testArena) (*T, uintptr) {
	var zero T
	addr := a.alloc(unsafe.Sizeof(zero))
	return (*T)(unsafe.Pointer(addr)), addr
}

func arenaArray[T any](a *testArena, n int) ([]T, uintptr) {
	var zero T
	addr := a.alloc(unsafe.Sizeof(zero) * uintptr(n))
	return unsafe.Slice((*T)(unsafe.Pointer(addr)), n), addr
}

// arenaRefs stores addrs as a runtime array of pointers.
func arenaRefs(a *testArena, addrs ...uintptr) uintptr {
	slots, base := arenaArray[uintptr](a, len(addrs))
	copy(slots, addrs)
	return base
}

func TestArenaCstring(t *testing.T) {
	a := newTestArena(t, 4096)
	addr := a.cstring("gr2")
	if got := CstringToGo(addr); got != "gr2" {
		t.Fatalf("expected %q, got %q", "gr2", got)
	}
	next := a.alloc(1)
	if next%8 != 0 {
		t.Fatalf("expected 8-byte alignment, got %#x", next)
	}
}
