package granny

import "encoding/binary"

// Ptr is a pointer slot inside a packed vendor structure.
//
// The vendor compiles most of its structures with 1-byte packing, which puts
// 8-byte pointers at 4-byte offsets. Go aligns uintptr fields to 8 bytes, so
// packed mirrors store pointers as raw little-endian bytes instead.
type Ptr [8]byte

// MakePtr stores addr in a pointer slot.
func MakePtr(addr uintptr) Ptr {
	var p Ptr
	binary.LittleEndian.PutUint64(p[:], uint64(addr))
	return p
}

// Addr returns the address held by the slot.
func (p Ptr) Addr() uintptr {
	return uintptr(binary.LittleEndian.Uint64(p[:]))
}

// IsNil reports whether the slot holds a null pointer.
func (p Ptr) IsNil() bool {
	return p.Addr() == 0
}
