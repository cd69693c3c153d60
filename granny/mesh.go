package granny

import (
	"errors"
	"fmt"
	"unsafe"
)

var errNilMesh = errors.New("mesh is nil")

// MeshVertexCount returns the number of vertices in the mesh's primary vertex data.
func MeshVertexCount(mesh *Mesh) (int, error) {
	if mesh == nil {
		return 0, errNilMesh
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if getMeshVertexCountFunc == nil {
		return 0, ErrNotInitialized
	}
	return int(getMeshVertexCountFunc(mesh)), nil
}

// MeshIndexCount returns the number of triangle indices in the mesh's primary topology.
func MeshIndexCount(mesh *Mesh) (int, error) {
	if mesh == nil {
		return 0, errNilMesh
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if getMeshIndexCountFunc == nil {
		return 0, ErrNotInitialized
	}
	return int(getMeshIndexCountFunc(mesh)), nil
}

// MeshIsRigid reports whether the mesh is bound to a single bone.
func MeshIsRigid(mesh *Mesh) (bool, error) {
	if mesh == nil {
		return false, errNilMesh
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if meshIsRigidFunc == nil {
		return false, ErrNotInitialized
	}
	return meshIsRigidFunc(mesh) != 0, nil
}

// CopyMeshVertices converts the mesh's vertices into vertexType and writes
// them to dst, which must hold MeshVertexCount vertices of that type.
func CopyMeshVertices(mesh *Mesh, vertexType *DataTypeDefinition, dst unsafe.Pointer) error {
	if mesh == nil {
		return errNilMesh
	}
	if vertexType == nil {
		return errors.New("vertex type is nil")
	}
	if dst == nil {
		return errors.New("destination is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if copyMeshVerticesFunc == nil {
		return ErrNotInitialized
	}
	copyMeshVerticesFunc(mesh, vertexType, dst)
	return nil
}

// CopyMeshVerticesPWNT3432 returns the mesh's vertices as PWNT3432Vertex.
func CopyMeshVerticesPWNT3432(mesh *Mesh) ([]PWNT3432Vertex, error) {
	vertexType := NewPWNT3432VertexType()
	defer vertexType.Close()
	return copyVertices[PWNT3432Vertex](mesh, vertexType)
}

// CopyMeshVerticesPWNT34322 returns the mesh's vertices as PWNT34322Vertex.
func CopyMeshVerticesPWNT34322(mesh *Mesh) ([]PWNT34322Vertex, error) {
	vertexType := NewPWNT34322VertexType()
	defer vertexType.Close()
	return copyVertices[PWNT34322Vertex](mesh, vertexType)
}

func copyVertices[V any](mesh *Mesh, vertexType *DataType) ([]V, error) {
	if mesh == nil {
		return nil, errNilMesh
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if getMeshVertexCountFunc == nil || getTotalTypeSizeFunc == nil || copyMeshVerticesFunc == nil {
		return nil, ErrNotInitialized
	}

	var zero V
	if size := getTotalTypeSizeFunc(vertexType.Definition()); uintptr(size) != unsafe.Sizeof(zero) {
		return nil, fmt.Errorf("vertex type size mismatch: runtime reports %d bytes, Go layout has %d", size, unsafe.Sizeof(zero))
	}

	count := int(getMeshVertexCountFunc(mesh))
	if count < 0 {
		return nil, fmt.Errorf("runtime reported negative vertex count %d", count)
	}
	vertices := make([]V, count)
	if count == 0 {
		return vertices, nil
	}
	copyMeshVerticesFunc(mesh, vertexType.Definition(), unsafe.Pointer(&vertices[0]))
	return vertices, nil
}

// CopyMeshIndices16 returns the mesh's triangle indices narrowed to 16 bits.
func CopyMeshIndices16(mesh *Mesh) ([]uint16, error) {
	return copyIndices[uint16](mesh)
}

// CopyMeshIndices32 returns the mesh's triangle indices.
func CopyMeshIndices32(mesh *Mesh) ([]uint32, error) {
	return copyIndices[uint32](mesh)
}

func copyIndices[I uint16 | uint32](mesh *Mesh) ([]I, error) {
	if mesh == nil {
		return nil, errNilMesh
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if getMeshIndexCountFunc == nil || copyMeshIndicesFunc == nil {
		return nil, ErrNotInitialized
	}

	count := int(getMeshIndexCountFunc(mesh))
	if count < 0 {
		return nil, fmt.Errorf("runtime reported negative index count %d", count)
	}
	indices := make([]I, count)
	if count == 0 {
		return indices, nil
	}
	var zero I
	copyMeshIndicesFunc(mesh, int32(unsafe.Sizeof(zero)), unsafe.Pointer(&indices[0]))
	return indices, nil
}

// CopyMeshIndices writes the mesh's triangle indices to dst using
// bytesPerIndex (2 or 4) bytes per index. dst must hold MeshIndexCount indices.
func CopyMeshIndices(mesh *Mesh, bytesPerIndex int, dst unsafe.Pointer) error {
	if mesh == nil {
		return errNilMesh
	}
	if bytesPerIndex != 2 && bytesPerIndex != 4 {
		return fmt.Errorf("bytes per index must be 2 or 4, got %d", bytesPerIndex)
	}
	if dst == nil {
		return errors.New("destination is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if copyMeshIndicesFunc == nil {
		return ErrNotInitialized
	}
	copyMeshIndicesFunc(mesh, int32(bytesPerIndex), dst)
	return nil
}
