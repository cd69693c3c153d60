package granny

const (
	// NoParentBone is the ParentIndex of a root bone.
	NoParentBone = -1

	// VertexTextureCoordinatesName prefixes UV channel member names in vertex types.
	VertexTextureCoordinatesName = "TextureCoordinates"
)

// MemberType identifies the kind of a DataTypeDefinition member.
type MemberType int32

const (
	EndMember MemberType = iota
	InlineMember
	ReferenceMember
	ReferenceToArrayMember
	ArrayOfReferencesMember
	VariantReferenceMember
	UnsupportedMemberTypeRemove
	ReferenceToVariantArrayMember
	StringMember
	TransformMember
	Real32Member
	Int8Member
	UInt8Member
	BinormalInt8Member
	NormalUInt8Member
	Int16Member
	UInt16Member
	BinormalInt16Member
	NormalUInt16Member
	Int32Member
	UInt32Member
	Real16Member
	EmptyReferenceMember
	OnePastLastMemberType

	Bool32Member = Int32Member
)

// TransformFlags marks which components of a Transform are meaningful.
type TransformFlags uint32

const (
	HasPosition    TransformFlags = 0x1
	HasOrientation TransformFlags = 0x2
	HasScaleShear  TransformFlags = 0x4
)

// TransformFileFlags controls GrannyTransformFile.
type TransformFileFlags uint32

const (
	RenormalizeNormals     TransformFileFlags = 0x1
	ReorderTriangleIndices TransformFileFlags = 0x2
)

// CurveDataFormat is the Format byte of a curve data header.
type CurveDataFormat uint8

const (
	CurveFormatDaKeyframes32f CurveDataFormat = iota
	CurveFormatDaK32fC32f
	CurveFormatDaIdentity
	CurveFormatDaConstant32f
	CurveFormatD3Constant32f
	CurveFormatD4Constant32f
	CurveFormatDaK16uC16u
	CurveFormatDaK8uC8u
	CurveFormatD4nK16uC15u
	CurveFormatD4nK8uC7u
	CurveFormatD3K16uC16u
	CurveFormatD3K8uC8u
	CurveFormatD9I1K16uC16u
	CurveFormatD9I3K16uC16u
	CurveFormatD9I1K8uC8u
	CurveFormatD9I3K8uC8u
	CurveFormatD3I1K32fC32f
	CurveFormatD3I1K16uC16u
	CurveFormatD3I1K8uC8u
)

var curveDataFormatNames = [...]string{
	CurveFormatDaKeyframes32f: "DaKeyframes32f",
	CurveFormatDaK32fC32f:     "DaK32fC32f",
	CurveFormatDaIdentity:     "DaIdentity",
	CurveFormatDaConstant32f:  "DaConstant32f",
	CurveFormatD3Constant32f:  "D3Constant32f",
	CurveFormatD4Constant32f:  "D4Constant32f",
	CurveFormatDaK16uC16u:     "DaK16uC16u",
	CurveFormatDaK8uC8u:       "DaK8uC8u",
	CurveFormatD4nK16uC15u:    "D4nK16uC15u",
	CurveFormatD4nK8uC7u:      "D4nK8uC7u",
	CurveFormatD3K16uC16u:     "D3K16uC16u",
	CurveFormatD3K8uC8u:       "D3K8uC8u",
	CurveFormatD9I1K16uC16u:   "D9I1K16uC16u",
	CurveFormatD9I3K16uC16u:   "D9I3K16uC16u",
	CurveFormatD9I1K8uC8u:     "D9I1K8uC8u",
	CurveFormatD9I3K8uC8u:     "D9I3K8uC8u",
	CurveFormatD3I1K32fC32f:   "D3I1K32fC32f",
	CurveFormatD3I1K16uC16u:   "D3I1K16uC16u",
	CurveFormatD3I1K8uC8u:     "D3I1K8uC8u",
}

func (f CurveDataFormat) String() string {
	if int(f) < len(curveDataFormatNames) {
		return curveDataFormatNames[f]
	}
	return "Unknown"
}

// IsKnown reports whether f is one of the formats the runtime defines.
func (f CurveDataFormat) IsKnown() bool {
	return int(f) < len(curveDataFormatNames)
}
