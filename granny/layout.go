// Package granny binds the Granny 3D runtime (granny2_x64.dll) without cgo.
//
// The package mirrors the runtime's data structures with exact 64-bit layouts
// and resolves the runtime's exports at load time through purego.
package granny

import "unsafe"

// Vendor sizes. Each line fails to compile when a mirror drifts from the
// runtime's compiled layout.
var (
	_ [8]byte = [unsafe.Sizeof(uintptr(0))]byte{}
	_ [8]byte = [unsafe.Sizeof(Ptr{})]byte{}

	_ [0x24]byte = [unsafe.Sizeof(PixelLayout{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(TextureMIPLevel{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(TextureImage{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(Variant{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(PackedVariant{})]byte{}
	_ [0x30]byte = [unsafe.Sizeof(DataTypeDefinition{})]byte{}
	_ [0x5c]byte = [unsafe.Sizeof(Texture{})]byte{}
	_ [0x2c]byte = [unsafe.Sizeof(Material{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(MaterialMap{})]byte{}
	_ [0x08]byte = [unsafe.Sizeof(MaterialBinding{})]byte{}
	_ [0x44]byte = [unsafe.Sizeof(Transform{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(Curve2{})]byte{}
	_ [0x10]byte = [unsafe.Sizeof(PackedCurve{})]byte{}
	_ [0x20]byte = [unsafe.Sizeof(VectorTrack{})]byte{}
	_ [0x0c]byte = [unsafe.Sizeof(TextTrackEntry{})]byte{}
	_ [0x14]byte = [unsafe.Sizeof(TextTrack{})]byte{}
	_ [0x3c]byte = [unsafe.Sizeof(TransformTrack{})]byte{}
	_ [0x30]byte = [unsafe.Sizeof(PeriodicLoop{})]byte{}
	_ [0xa4]byte = [unsafe.Sizeof(TrackGroup{})]byte{}
	_ [0x2c]byte = [unsafe.Sizeof(BoneBinding{})]byte{}
	_ [0xa4]byte = [unsafe.Sizeof(Bone{})]byte{}
	_ [0x28]byte = [unsafe.Sizeof(Skeleton{})]byte{}
	_ [0x2c]byte = [unsafe.Sizeof(TriAnnotationSet{})]byte{}
	_ [0x0c]byte = [unsafe.Sizeof(TriMaterialGroup{})]byte{}
	_ [0x6c]byte = [unsafe.Sizeof(TriTopology{})]byte{}
	_ [0x2c]byte = [unsafe.Sizeof(VertexAnnotationSet{})]byte{}
	_ [0x2c]byte = [unsafe.Sizeof(VertexData{})]byte{}
	_ [0x14]byte = [unsafe.Sizeof(MorphTarget{})]byte{}
	_ [0x4c]byte = [unsafe.Sizeof(Mesh{})]byte{}
	_ [0x08]byte = [unsafe.Sizeof(ModelMeshBinding{})]byte{}
	_ [0x70]byte = [unsafe.Sizeof(Model{})]byte{}
	_ [0x28]byte = [unsafe.Sizeof(PWNT3432Vertex{})]byte{}
	_ [0x30]byte = [unsafe.Sizeof(PWNT34322Vertex{})]byte{}
	_ [0x02]byte = [unsafe.Sizeof(CurveDataHeader{})]byte{}
	_ [0x20]byte = [unsafe.Sizeof(CurveDataDaK32fC32f{})]byte{}
	_ [0x38]byte = [unsafe.Sizeof(Animation{})]byte{}
	_ [0x08]byte = [unsafe.Sizeof(Ref{})]byte{}
	_ [0x48]byte = [unsafe.Sizeof(FileHeader{})]byte{}
	_ [0x20]byte = [unsafe.Sizeof(FileMagic{})]byte{}
	_ [0x38]byte = [unsafe.Sizeof(File{})]byte{}
	_ [0x58]byte = [unsafe.Sizeof(ArtToolInfo{})]byte{}
	_ [0x28]byte = [unsafe.Sizeof(ExporterInfo{})]byte{}
	_ [0x94]byte = [unsafe.Sizeof(FileInfo{})]byte{}
)
