package granny

import "unsafe"

// Accessors over runtime-owned memory. Indexed accessors return nil for an
// out of range index or a null pointer; they never copy.

// element returns &base[i] for a runtime array of T.
func element[T any](base uintptr, count int32, i int) *T {
	if base == 0 || i < 0 || i >= int(count) {
		return nil
	}
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(i)*unsafe.Sizeof(zero)))
}

// reference returns base[i] for a runtime array of *T.
func reference[T any](base uintptr, count int32, i int) *T {
	slot := element[uintptr](base, count, i)
	if slot == nil || *slot == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(*slot))
}

// object converts a runtime pointer to *T.
func object[T any](addr uintptr) *T {
	if addr == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(addr))
}

// slice views a runtime array as a Go slice.
func slice[T any](base uintptr, count int32) []T {
	if base == 0 || count <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(base)), int(count))
}

func (f *File) GetHeader() *FileHeader     { return object[FileHeader](f.Header.Addr()) }
func (f *File) GetSourceMagic() *FileMagic { return object[FileMagic](f.SourceMagicValue.Addr()) }

// Section returns the base address of the i-th loaded section.
func (f *File) Section(i int) uintptr {
	slot := element[uintptr](f.Sections.Addr(), f.SectionCount, i)
	if slot == nil {
		return 0
	}
	return *slot
}

func (i *FileInfo) GetFromFileName() string        { return CstringToGo(i.FromFileName.Addr()) }
func (i *FileInfo) GetArtToolInfo() *ArtToolInfo   { return object[ArtToolInfo](i.ArtToolInfo.Addr()) }
func (i *FileInfo) GetExporterInfo() *ExporterInfo { return object[ExporterInfo](i.ExporterInfo.Addr()) }

func (i *FileInfo) Texture(n int) *Texture {
	return reference[Texture](i.Textures.Addr(), i.TextureCount, n)
}

func (i *FileInfo) Material(n int) *Material {
	return reference[Material](i.Materials.Addr(), i.MaterialCount, n)
}

func (i *FileInfo) Skeleton(n int) *Skeleton {
	return reference[Skeleton](i.Skeletons.Addr(), i.SkeletonCount, n)
}

func (i *FileInfo) VertexData(n int) *VertexData {
	return reference[VertexData](i.VertexDatas.Addr(), i.VertexDataCount, n)
}

func (i *FileInfo) TriTopology(n int) *TriTopology {
	return reference[TriTopology](i.TriTopologies.Addr(), i.TriTopologyCount, n)
}

func (i *FileInfo) Mesh(n int) *Mesh {
	return reference[Mesh](i.Meshes.Addr(), i.MeshCount, n)
}

func (i *FileInfo) Model(n int) *Model {
	return reference[Model](i.Models.Addr(), i.ModelCount, n)
}

func (i *FileInfo) TrackGroup(n int) *TrackGroup {
	return reference[TrackGroup](i.TrackGroups.Addr(), i.TrackGroupCount, n)
}

func (i *FileInfo) Animation(n int) *Animation {
	return reference[Animation](i.Animations.Addr(), i.AnimationCount, n)
}

func (a *ArtToolInfo) GetName() string  { return CstringToGo(a.FromArtToolName.Addr()) }
func (e *ExporterInfo) GetName() string { return CstringToGo(e.ExporterName.Addr()) }

func (t *Texture) GetFromFileName() string { return CstringToGo(t.FromFileName.Addr()) }

func (t *Texture) Image(n int) *TextureImage {
	return element[TextureImage](t.Images.Addr(), t.ImageCount, n)
}

func (t *TextureImage) MIPLevel(n int) *TextureMIPLevel {
	return element[TextureMIPLevel](t.MIPLevels, t.MIPLevelCount, n)
}

// Pixels views the level's pixel bytes.
func (l *TextureMIPLevel) Pixels() []byte {
	return slice[byte](l.PixelBytes, l.PixelByteCount)
}

func (m *Material) GetName() string      { return CstringToGo(m.Name.Addr()) }
func (m *Material) GetTexture() *Texture { return object[Texture](m.Texture.Addr()) }

func (m *Material) Map(n int) *MaterialMap {
	return element[MaterialMap](m.Maps.Addr(), m.MapCount, n)
}

func (m *MaterialMap) GetUsage() string           { return CstringToGo(m.Usage) }
func (m *MaterialMap) GetMaterial() *Material     { return object[Material](m.Material) }
func (b *MaterialBinding) GetMaterial() *Material { return object[Material](b.Material) }

// Has reports whether every flag in f is set.
func (t *Transform) Has(f TransformFlags) bool { return t.Flags&f == f }

func (c *Curve2) Header() *CurveDataHeader {
	if c == nil {
		return nil
	}
	return object[CurveDataHeader](c.CurveData.Object)
}

// Format returns the curve data format. ok is false when the curve has no
// data object.
func (c *Curve2) Format() (format CurveDataFormat, ok bool) {
	return c.Header().format()
}

// Degree returns the curve's degree, or 0 when the curve has no data object.
func (c *Curve2) Degree() int {
	return c.Header().degree()
}

func (c *PackedCurve) Header() *CurveDataHeader {
	if c == nil {
		return nil
	}
	return object[CurveDataHeader](c.CurveData.Object.Addr())
}

func (c *PackedCurve) Format() (format CurveDataFormat, ok bool) {
	return c.Header().format()
}

func (c *PackedCurve) Degree() int {
	return c.Header().degree()
}

func (h *CurveDataHeader) format() (CurveDataFormat, bool) {
	if h == nil {
		return 0, false
	}
	return h.Format, true
}

func (h *CurveDataHeader) degree() int {
	if h == nil {
		return 0
	}
	return int(h.Degree)
}

func (t *VectorTrack) GetName() string    { return CstringToGo(t.Name.Addr()) }
func (t *TransformTrack) GetName() string { return CstringToGo(t.Name.Addr()) }
func (t *TextTrack) GetName() string      { return CstringToGo(t.Name.Addr()) }
func (e *TextTrackEntry) GetText() string { return CstringToGo(e.Text.Addr()) }

func (t *TextTrack) Entry(n int) *TextTrackEntry {
	return element[TextTrackEntry](t.Entries.Addr(), t.EntryCount, n)
}

func (g *TrackGroup) GetName() string { return CstringToGo(g.Name.Addr()) }

func (g *TrackGroup) VectorTrack(n int) *VectorTrack {
	return element[VectorTrack](g.VectorTracks.Addr(), g.VectorTrackCount, n)
}

func (g *TrackGroup) TransformTrack(n int) *TransformTrack {
	return element[TransformTrack](g.TransformTracks.Addr(), g.TransformTrackCount, n)
}

func (g *TrackGroup) TextTrack(n int) *TextTrack {
	return element[TextTrack](g.TextTracks.Addr(), g.TextTrackCount, n)
}

func (g *TrackGroup) LODErrors() []float32 {
	return slice[float32](g.TransformLODErrors.Addr(), g.TransformLODErrorCount)
}

func (g *TrackGroup) GetPeriodicLoop() *PeriodicLoop {
	return object[PeriodicLoop](g.PeriodicLoop.Addr())
}

func (b *BoneBinding) GetBoneName() string { return CstringToGo(b.BoneName.Addr()) }

func (b *BoneBinding) TriangleIndexList() []int32 {
	return slice[int32](b.TriangleIndices.Addr(), b.TriangleCount)
}

func (b *Bone) GetName() string { return CstringToGo(b.Name.Addr()) }

// IsRoot reports whether the bone has no parent.
func (b *Bone) IsRoot() bool { return b.ParentIndex == NoParentBone }

func (s *Skeleton) GetName() string { return CstringToGo(s.Name.Addr()) }

func (s *Skeleton) Bone(n int) *Bone {
	return element[Bone](s.Bones.Addr(), s.BoneCount, n)
}

func (s *TriAnnotationSet) GetName() string { return CstringToGo(s.Name.Addr()) }

func (s *TriAnnotationSet) GetTriAnnotationType() *DataTypeDefinition {
	return object[DataTypeDefinition](s.TriAnnotationType.Addr())
}

func (t *TriTopology) Group(n int) *TriMaterialGroup {
	return element[TriMaterialGroup](t.Groups.Addr(), t.GroupCount, n)
}

func (t *TriTopology) IndexList() []int32 {
	return slice[int32](t.Indices.Addr(), t.IndexCount)
}

func (t *TriTopology) Index16List() []uint16 {
	return slice[uint16](t.Indices16.Addr(), t.Index16Count)
}

func (t *TriTopology) TriAnnotationSet(n int) *TriAnnotationSet {
	return element[TriAnnotationSet](t.TriAnnotationSets.Addr(), t.TriAnnotationSetCount, n)
}

func (s *VertexAnnotationSet) GetName() string { return CstringToGo(s.Name.Addr()) }

func (s *VertexAnnotationSet) GetVertexAnnotationType() *DataTypeDefinition {
	return object[DataTypeDefinition](s.VertexAnnotationType.Addr())
}

func (v *VertexData) GetVertexType() *DataTypeDefinition {
	return object[DataTypeDefinition](v.VertexType.Addr())
}

func (v *VertexData) VertexComponentName(n int) string {
	slot := element[uintptr](v.VertexComponentNames.Addr(), v.VertexComponentNameCount, n)
	if slot == nil {
		return ""
	}
	return CstringToGo(*slot)
}

func (v *VertexData) VertexAnnotationSet(n int) *VertexAnnotationSet {
	return element[VertexAnnotationSet](v.VertexAnnotationSets.Addr(), v.VertexAnnotationSetCount, n)
}

func (t *MorphTarget) GetScalarName() string      { return CstringToGo(t.ScalarName.Addr()) }
func (t *MorphTarget) GetVertexData() *VertexData { return object[VertexData](t.VertexData.Addr()) }

func (m *Mesh) GetName() string { return CstringToGo(m.Name.Addr()) }

func (m *Mesh) GetPrimaryVertexData() *VertexData {
	return object[VertexData](m.PrimaryVertexData.Addr())
}

func (m *Mesh) GetPrimaryTopology() *TriTopology {
	return object[TriTopology](m.PrimaryTopology.Addr())
}

func (m *Mesh) MorphTarget(n int) *MorphTarget {
	return element[MorphTarget](m.MorphTargets.Addr(), m.MorphTargetCount, n)
}

func (m *Mesh) MaterialBinding(n int) *MaterialBinding {
	return element[MaterialBinding](m.MaterialBindings.Addr(), m.MaterialBindingCount, n)
}

func (m *Mesh) BoneBinding(n int) *BoneBinding {
	return element[BoneBinding](m.BoneBindings.Addr(), m.BoneBindingCount, n)
}

func (m *Model) GetName() string        { return CstringToGo(m.Name) }
func (m *Model) GetSkeleton() *Skeleton { return object[Skeleton](m.Skeleton) }

// MeshBinding returns the n-th mesh drawn by the model.
func (m *Model) MeshBinding(n int) *Mesh {
	binding := element[ModelMeshBinding](m.MeshBindings, m.MeshBindingCount, n)
	if binding == nil {
		return nil
	}
	return object[Mesh](binding.Mesh)
}

func (a *Animation) GetName() string { return CstringToGo(a.Name) }

func (a *Animation) TrackGroup(n int) *TrackGroup {
	return reference[TrackGroup](a.TrackGroups, a.TrackGroupCount, n)
}

func (d *DataTypeDefinition) GetName() string { return CstringToGo(d.Name) }

// Members returns the definition array starting at d, up to but excluding
// the EndMember terminator.
func (d *DataTypeDefinition) Members() []DataTypeDefinition {
	if d == nil {
		return nil
	}
	const maxMembers = 1 << 12
	n := 0
	for n < maxMembers && (*DataTypeDefinition)(unsafe.Add(unsafe.Pointer(d), uintptr(n)*unsafe.Sizeof(*d))).Type != EndMember {
		n++
	}
	return unsafe.Slice(d, n)
}
