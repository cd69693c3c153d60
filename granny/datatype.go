package granny

import (
	"runtime"
	"strconv"
	"unsafe"
)

// Member describes one member of a DataType built in Go.
type Member struct {
	Type       MemberType
	Name       string
	ArrayWidth int32
}

// DataType is a Go-owned, null-terminated DataTypeDefinition array the
// runtime can read, for example as the destination layout of
// CopyMeshVertices. It stays pinned until Close.
type DataType struct {
	defs   []DataTypeDefinition
	names  [][]byte
	pinner runtime.Pinner
}

// NewDataType builds a definition array from members and appends the
// EndMember terminator.
func NewDataType(members ...Member) *DataType {
	dt := &DataType{
		defs:  make([]DataTypeDefinition, len(members)+1),
		names: make([][]byte, 0, len(members)+1),
	}
	for i, m := range members {
		dt.defs[i] = DataTypeDefinition{
			Type:       m.Type,
			Name:       dt.pinName(m.Name),
			ArrayWidth: m.ArrayWidth,
		}
	}
	// The terminator carries an empty, non-null name.
	dt.defs[len(members)] = DataTypeDefinition{Type: EndMember, Name: dt.pinName("")}
	dt.pinner.Pin(&dt.defs[0])
	return dt
}

func (dt *DataType) pinName(name string) uintptr {
	nameBytes, namePtr := GoToCstring(name)
	dt.pinner.Pin(&nameBytes[0])
	dt.names = append(dt.names, nameBytes)
	return namePtr
}

// Definition returns the first member, which is how the runtime addresses a type.
func (dt *DataType) Definition() *DataTypeDefinition {
	if dt == nil || len(dt.defs) == 0 {
		return nil
	}
	return &dt.defs[0]
}

// Len returns the number of members, excluding the terminator.
func (dt *DataType) Len() int {
	if dt == nil || len(dt.defs) == 0 {
		return 0
	}
	return len(dt.defs) - 1
}

// Close unpins the definitions. The DataType must not be passed to the
// runtime afterwards.
func (dt *DataType) Close() {
	if dt == nil {
		return
	}
	dt.pinner.Unpin()
	dt.defs = nil
	dt.names = nil
}

// NewPWNT3432VertexType describes PWNT3432Vertex.
func NewPWNT3432VertexType() *DataType {
	return NewDataType(pwntMembers(1)...)
}

// NewPWNT34322VertexType describes PWNT34322Vertex.
func NewPWNT34322VertexType() *DataType {
	return NewDataType(pwntMembers(2)...)
}

func pwntMembers(uvChannels int) []Member {
	members := []Member{
		{Type: Real32Member, Name: "Position", ArrayWidth: 3},
		{Type: NormalUInt8Member, Name: "BoneWeights", ArrayWidth: 4},
		{Type: UInt8Member, Name: "BoneIndices", ArrayWidth: 4},
		{Type: Real32Member, Name: "Normal", ArrayWidth: 3},
	}
	for i := 0; i < uvChannels; i++ {
		members = append(members, Member{
			Type:       Real32Member,
			Name:       VertexTextureCoordinatesName + strconv.Itoa(i),
			ArrayWidth: 2,
		})
	}
	return members
}

// memberSize returns the byte size of an inline scalar member, or 0 for
// members whose size depends on the runtime (references, strings, nested types).
func memberSize(m MemberType) uintptr {
	switch m {
	case Real32Member, Int32Member, UInt32Member:
		return 4
	case Int16Member, UInt16Member, BinormalInt16Member, NormalUInt16Member, Real16Member:
		return 2
	case Int8Member, UInt8Member, BinormalInt8Member, NormalUInt8Member:
		return 1
	case TransformMember:
		return unsafe.Sizeof(Transform{})
	default:
		return 0
	}
}

// ScalarSize sums the sizes of scalar members, treating an ArrayWidth of 0
// as 1. The second result is false if any member is not a plain scalar.
func (dt *DataType) ScalarSize() (uintptr, bool) {
	var total uintptr
	for _, def := range dt.defs[:dt.Len()] {
		size := memberSize(def.Type)
		if size == 0 {
			return 0, false
		}
		width := uintptr(1)
		if def.ArrayWidth > 0 {
			width = uintptr(def.ArrayWidth)
		}
		total += size * width
	}
	return total, true
}
