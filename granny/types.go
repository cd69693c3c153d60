package granny

// Mirrors of the runtime's in-memory structures for the 64-bit ABI.
//
// Structures the runtime compiles with 1-byte packing use Ptr for pointer
// fields and PackedVariant/PackedCurve for embedded variants; naturally
// aligned structures use uintptr. Sizes are checked in layout.go.

type (
	Triple    [3]float32
	Quad      [4]float32
	Matrix4x4 [4][4]float32
)

// PixelLayout describes how a pixel format packs its components.
type PixelLayout struct {
	BytesPerPixel     int32
	ShiftForComponent [4]int32
	BitsForComponent  [4]int32
}

// TextureMIPLevel holds the pixels of one MIP level.
type TextureMIPLevel struct {
	Stride         int32
	PixelByteCount int32
	PixelBytes     uintptr
}

// TextureImage holds the MIP chain of one texture image.
type TextureImage struct {
	MIPLevelCount int32
	_             [4]byte
	MIPLevels     uintptr
}

// Variant is a typed reference: a type definition plus the object it describes.
type Variant struct {
	Type   uintptr
	Object uintptr
}

// PackedVariant is a Variant embedded in a packed structure.
type PackedVariant struct {
	Type   Ptr
	Object Ptr
}

// DataTypeDefinition describes one member of a runtime data type. Arrays of
// definitions are terminated by an EndMember entry.
type DataTypeDefinition struct {
	Type           MemberType
	_              [4]byte
	Name           uintptr
	ReferenceType  uintptr
	ArrayWidth     int32
	Extra          [3]int32
	IgnoredIgnored uintptr
}

// Texture is packed.
type Texture struct {
	FromFileName Ptr
	TextureType  int32
	Width        int32
	Height       int32
	Encoding     int32
	SubFormat    int32
	Layout       PixelLayout
	ImageCount   int32
	Images       Ptr
	ExtendedData PackedVariant
}

// Material is packed.
type Material struct {
	Name         Ptr
	MapCount     int32
	Maps         Ptr
	Texture      Ptr
	ExtendedData PackedVariant
}

// MaterialMap assigns a material to a usage slot such as "Diffuse Color".
type MaterialMap struct {
	Usage    uintptr
	Material uintptr
}

type MaterialBinding struct {
	Material uintptr
}

// Transform is a decomposed local transform.
type Transform struct {
	Flags       TransformFlags
	Position    Triple
	Orientation Quad
	ScaleShear  [3][3]float32
}

// Curve2 is an animation curve. CurveData points at a curve data header
// followed by format specific data.
type Curve2 struct {
	CurveData Variant
}

// PackedCurve is a Curve2 embedded in a packed structure.
type PackedCurve struct {
	CurveData PackedVariant
}

// VectorTrack is packed.
type VectorTrack struct {
	Name       Ptr
	TrackKey   uint32
	Dimension  int32
	ValueCurve PackedCurve
}

// TextTrackEntry is packed.
type TextTrackEntry struct {
	TimeStamp float32
	Text      Ptr
}

// TextTrack is packed.
type TextTrack struct {
	Name       Ptr
	EntryCount int32
	Entries    Ptr
}

// TransformTrack is packed.
type TransformTrack struct {
	Name             Ptr
	Flags            int32
	OrientationCurve PackedCurve
	PositionCurve    PackedCurve
	ScaleShearCurve  PackedCurve
}

type PeriodicLoop struct {
	Radius float32
	DAngle float32
	DZ     float32
	BasisX Triple
	BasisY Triple
	Axis   Triple
}

// TrackGroup holds the tracks animating one model. Packed.
type TrackGroup struct {
	Name                   Ptr
	VectorTrackCount       int32
	VectorTracks           Ptr
	TransformTrackCount    int32
	TransformTracks        Ptr
	TransformLODErrorCount int32
	TransformLODErrors     Ptr
	TextTrackCount         int32
	TextTracks             Ptr
	InitialPlacement       Transform
	Flags                  int32
	LoopTranslation        Triple
	PeriodicLoop           Ptr
	ExtendedData           PackedVariant
}

// BoneBinding is packed.
type BoneBinding struct {
	BoneName        Ptr
	OBBMin          Triple
	OBBMax          Triple
	TriangleCount   int32
	TriangleIndices Ptr
}

// Bone is packed.
type Bone struct {
	Name            Ptr
	ParentIndex     int32
	LocalTransform  Transform
	InverseWorld4x4 Matrix4x4
	LODError        float32
	ExtendedData    PackedVariant
}

// Skeleton is packed.
type Skeleton struct {
	Name         Ptr
	BoneCount    int32
	Bones        Ptr
	LODType      int32
	ExtendedData PackedVariant
}

// TriAnnotationSet is packed.
type TriAnnotationSet struct {
	Name                          Ptr
	TriAnnotationType             Ptr
	TriAnnotationCount            int32
	TriAnnotations                Ptr
	IndicesMapFromTriToAnnotation int32
	TriAnnotationIndexCount       int32
	TriAnnotationIndices          Ptr
}

// TriMaterialGroup is a run of triangles sharing one material binding.
type TriMaterialGroup struct {
	MaterialIndex int32
	TriFirst      int32
	TriCount      int32
}

// TriTopology is packed.
type TriTopology struct {
	GroupCount            int32
	Groups                Ptr
	IndexCount            int32
	Indices               Ptr
	Index16Count          int32
	Indices16             Ptr
	VertexToVertexCount   int32
	VertexToVertexMap     Ptr
	VertexToTriangleCount int32
	VertexToTriangleMap   Ptr
	SideToNeighborCount   int32
	SideToNeighborMap     Ptr
	BonesForTriangleCount int32
	BonesForTriangle      Ptr
	TriangleToBoneCount   int32
	TriangleToBoneIndices Ptr
	TriAnnotationSetCount int32
	TriAnnotationSets     Ptr
}

// VertexAnnotationSet is packed.
type VertexAnnotationSet struct {
	Name                             Ptr
	VertexAnnotationType             Ptr
	VertexAnnotationCount            int32
	VertexAnnotations                Ptr
	IndicesMapFromVertexToAnnotation int32
	VertexAnnotationIndexCount       int32
	VertexAnnotationIndices          Ptr
}

// VertexData is packed.
type VertexData struct {
	VertexType               Ptr
	VertexCount              int32
	Vertices                 Ptr
	VertexComponentNameCount int32
	VertexComponentNames     Ptr
	VertexAnnotationSetCount int32
	VertexAnnotationSets     Ptr
}

// MorphTarget is packed.
type MorphTarget struct {
	ScalarName   Ptr
	VertexData   Ptr
	DataIsDeltas int32
}

// Mesh is packed.
type Mesh struct {
	Name                 Ptr
	PrimaryVertexData    Ptr
	MorphTargetCount     int32
	MorphTargets         Ptr
	PrimaryTopology      Ptr
	MaterialBindingCount int32
	MaterialBindings     Ptr
	BoneBindingCount     int32
	BoneBindings         Ptr
	ExtendedData         PackedVariant
}

// ModelMeshBinding references a mesh drawn by a model.
type ModelMeshBinding struct {
	Mesh uintptr
}

type Model struct {
	Name             uintptr
	Skeleton         uintptr
	InitialPlacement Transform
	MeshBindingCount int32
	MeshBindings     uintptr
	ExtendedData     Variant
}

// PWNT3432Vertex is a skinned vertex with position, 4 bone weights,
// 4 bone indices, normal and one UV channel.
type PWNT3432Vertex struct {
	Position    Triple
	BoneWeights [4]uint8
	BoneIndices [4]uint8
	Normal      Triple
	UV          [2]float32
}

// PWNT34322Vertex is PWNT3432Vertex with a second UV channel.
type PWNT34322Vertex struct {
	Position    Triple
	BoneWeights [4]uint8
	BoneIndices [4]uint8
	Normal      Triple
	UV1         [2]float32
	UV2         [2]float32
}

// CurveDataHeader starts every curve data block.
type CurveDataHeader struct {
	Format CurveDataFormat
	Degree uint8
}

// CurveDataDaK32fC32f is keyframed curve data with float knots and controls.
type CurveDataDaK32fC32f struct {
	CurveDataHeader CurveDataHeader
	Padding         int16
	KnotCount       int32
	Knots           uintptr
	ControlCount    int32
	Controls        uintptr
}

type Animation struct {
	Name             uintptr
	Duration         float32
	TimeStep         float32
	Oversampling     float32
	TrackGroupCount  int32
	TrackGroups      uintptr
	DefaultLoopCount int32
	Flags            int32
	ExtendedData     Variant
}

// Ref locates an object inside a file section.
type Ref struct {
	SectionIndex uint32
	Offset       uint32
}

type FileHeader struct {
	Version                  uint32
	TotalSize                uint32
	CRC                      uint32
	SectionArrayOffset       uint32
	SectionArrayCount        uint32
	RootObjectTypeDefinition Ref
	RootObject               Ref
	TypeTag                  uint32
	ExtraTags                [4]uint32
	StringDatabaseCRC        uint32
	ReservedUnused           [3]uint32
}

type FileMagic struct {
	MagicValue   [4]uint32
	HeaderSize   uint32
	HeaderFormat uint32
	Reserved     [2]uint32
}

// File is a loaded file as returned by GrannyReadEntireFile. Packed.
type File struct {
	IsByteReversed   int32
	Header           Ptr
	SourceMagicValue Ptr
	SectionCount     int32
	Sections         Ptr
	Marshalled       Ptr
	IsUserMemory     Ptr
	ConversionBuffer Ptr
}

// ArtToolInfo describes the tool and coordinate system the file was authored in. Packed.
type ArtToolInfo struct {
	FromArtToolName      Ptr
	ArtToolMajorRevision int32
	ArtToolMinorRevision int32
	ArtToolPointerSize   int32
	UnitsPerMeter        float32
	Origin               Triple
	RightVector          Triple
	UpVector             Triple
	BackVector           Triple
	ExtendedData         PackedVariant
}

// ExporterInfo is packed.
type ExporterInfo struct {
	ExporterName          Ptr
	ExporterMajorRevision int32
	ExporterMinorRevision int32
	ExporterCustomization int32
	ExporterBuildNumber   int32
	ExtendedData          PackedVariant
}

// FileInfo is the root object of a file. Packed.
type FileInfo struct {
	ArtToolInfo      Ptr
	ExporterInfo     Ptr
	FromFileName     Ptr
	TextureCount     int32
	Textures         Ptr
	MaterialCount    int32
	Materials        Ptr
	SkeletonCount    int32
	Skeletons        Ptr
	VertexDataCount  int32
	VertexDatas      Ptr
	TriTopologyCount int32
	TriTopologies    Ptr
	MeshCount        int32
	Meshes           Ptr
	ModelCount       int32
	Models           Ptr
	TrackGroupCount  int32
	TrackGroups      Ptr
	AnimationCount   int32
	Animations       Ptr
	ExtendedData     PackedVariant
}
