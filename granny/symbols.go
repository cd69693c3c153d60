package granny

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Bindings to the runtime's exports. They are written only while callMu is
// held exclusively and read under callMu.RLock.
//
// C++ bool results are declared as uint8: only the low byte of the return
// register is defined.
var (
	readEntireFileFunc             func(fileName uintptr) uintptr
	getFileInfoFunc                func(file *File) uintptr
	freeFileFunc                   func(file *File)
	getTotalTypeSizeFunc           func(typeDefinition *DataTypeDefinition) int32
	getMeshVertexCountFunc         func(mesh *Mesh) int32
	getMeshIndexCountFunc          func(mesh *Mesh) int32
	copyMeshVerticesFunc           func(mesh *Mesh, vertexType *DataTypeDefinition, destVertices unsafe.Pointer)
	copyMeshIndicesFunc            func(mesh *Mesh, bytesPerIndex int32, destIndices unsafe.Pointer)
	buildCompositeTransform4x4Func func(transform *Transform, composite4x4 *Matrix4x4)
	meshIsRigidFunc                func(mesh *Mesh) uint8
	computeBasisConversionFunc     func(fileInfo *FileInfo, desiredUnitsPerMeter float32, desiredOrigin3, desiredRight3, desiredUp3, desiredBack3 *Triple, resultAffine3 *[3]float32, resultLinear3x3, resultInverseLinear3x3 *[9]float32) uint8
	transformFileFunc              func(fileInfo *FileInfo, affine3 *[3]float32, linear3x3, inverseLinear3x3 *[9]float32, affineTolerance, linearTolerance float32, flags uint32)
	curveMakeStaticDaK32fC32fFunc  func(curve *Curve2, curveData *CurveDataDaK32fC32f, knotCount, degree, dimension int32, knots, controls *float32)
	curveConvertToDaK32fC32fFunc   func(srcCurve uintptr, identityVector *float32) uintptr
	freeCurveFunc                  func(curve uintptr)
	curveGetKnotCountFunc          func(curve uintptr) int32
	curveGetDimensionFunc          func(curve uintptr) int32
	curveGetDegreeFunc             func(curve uintptr) int32
	evaluateCurveAtTFunc           func(dimension int32, normalize, backwardsLoop bool, curve uintptr, forwardsLoop bool, curveDuration, t float32, result, identityVector *float32)
	evaluateCurveAtKnotIndexFunc   func(dimension int32, normalize, backwardsLoop bool, curve uintptr, forwardsLoop bool, curveDuration float32, knotIndex int32, t float32, result, identityVector *float32)
	findKnotFunc                   func(knotCount int32, knots *float32, t float32) int32
	findCloseKnotFunc              func(knotCount int32, knots *float32, t float32, startingIndex int32) int32
	curveIsKeyframedFunc           func(curve uintptr) uint8
	curveInitializeFormatFunc      func(curve uintptr)
	textureHasAlphaFunc            func(texture *Texture) uint8
	copyTextureImageFunc           func(texture *Texture, imageIndex, mipIndex int32, layout *PixelLayout, destWidth, destHeight, destStride int32, pixels unsafe.Pointer)

	curveIdentityPositionAddr    uintptr
	curveIdentityOrientationAddr uintptr
	curveIdentityScaleShearAddr  uintptr
	curveIdentityScaleAddr       uintptr
	curveDataDaIdentityTypeAddr  uintptr
	rgba8888PixelFormatAddr      uintptr
	rgb888PixelFormatAddr        uintptr
)

type symbolKind int

const (
	// symbolFunction is an exported function bound with purego.
	symbolFunction symbolKind = iota
	// symbolData is an exported object; the symbol address is the object.
	symbolData
	// symbolDataPointer is an exported pointer variable; the object is
	// whatever the variable points at.
	symbolDataPointer
)

type symbolBinding struct {
	name string
	kind symbolKind
	fn   any
	addr *uintptr
}

func symbolBindings() []symbolBinding {
	return []symbolBinding{
		{name: "GrannyReadEntireFile", fn: &readEntireFileFunc},
		{name: "GrannyGetFileInfo", fn: &getFileInfoFunc},
		{name: "GrannyFreeFile", fn: &freeFileFunc},
		{name: "GrannyGetTotalTypeSize", fn: &getTotalTypeSizeFunc},
		{name: "GrannyGetMeshVertexCount", fn: &getMeshVertexCountFunc},
		{name: "GrannyGetMeshIndexCount", fn: &getMeshIndexCountFunc},
		{name: "GrannyCopyMeshVertices", fn: &copyMeshVerticesFunc},
		{name: "GrannyCopyMeshIndices", fn: &copyMeshIndicesFunc},
		{name: "GrannyBuildCompositeTransform4x4", fn: &buildCompositeTransform4x4Func},
		{name: "GrannyMeshIsRigid", fn: &meshIsRigidFunc},
		{name: "GrannyComputeBasisConversion", fn: &computeBasisConversionFunc},
		{name: "GrannyTransformFile", fn: &transformFileFunc},
		{name: "GrannyCurveMakeStaticDaK32fC32f", fn: &curveMakeStaticDaK32fC32fFunc},
		{name: "GrannyCurveConvertToDaK32fC32f", fn: &curveConvertToDaK32fC32fFunc},
		{name: "GrannyFreeCurve", fn: &freeCurveFunc},
		{name: "GrannyCurveGetKnotCount", fn: &curveGetKnotCountFunc},
		{name: "GrannyCurveGetDimension", fn: &curveGetDimensionFunc},
		{name: "GrannyCurveGetDegree", fn: &curveGetDegreeFunc},
		{name: "GrannyCurveIdentityPosition", kind: symbolData, addr: &curveIdentityPositionAddr},
		{name: "GrannyCurveIdentityOrientation", kind: symbolData, addr: &curveIdentityOrientationAddr},
		{name: "GrannyCurveIdentityScaleShear", kind: symbolData, addr: &curveIdentityScaleShearAddr},
		{name: "GrannyCurveIdentityScale", kind: symbolData, addr: &curveIdentityScaleAddr},
		{name: "GrannyEvaluateCurveAtT", fn: &evaluateCurveAtTFunc},
		{name: "GrannyEvaluateCurveAtKnotIndex", fn: &evaluateCurveAtKnotIndexFunc},
		{name: "GrannyFindKnot", fn: &findKnotFunc},
		{name: "GrannyFindCloseKnot", fn: &findCloseKnotFunc},
		{name: "GrannyCurveIsKeyframed", fn: &curveIsKeyframedFunc},
		{name: "GrannyCurveInitializeFormat", fn: &curveInitializeFormatFunc},
		{name: "GrannyCurveDataDaIdentityType", kind: symbolData, addr: &curveDataDaIdentityTypeAddr},
		{name: "GrannyTextureHasAlpha", fn: &textureHasAlphaFunc},
		{name: "GrannyRGBA8888PixelFormat", kind: symbolDataPointer, addr: &rgba8888PixelFormatAddr},
		{name: "GrannyRGB888PixelFormat", kind: symbolDataPointer, addr: &rgb888PixelFormatAddr},
		{name: "GrannyCopyTextureImage", fn: &copyTextureImageFunc},
	}
}

// RequiredSymbols returns the names of every export the package binds, in
// resolution order.
func RequiredSymbols() []string {
	bindings := symbolBindings()
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.name
	}
	return names
}

type symbolLookup func(name string) (uintptr, error)

func missingSymbolError(name, library string) error {
	return fmt.Errorf("granny function %q not available in %q library", name, library)
}

var errNullData = errors.New("holds a null pointer")

// lookupExport returns the address to bind for b. Data pointer exports are
// dereferenced and must not hold null.
func lookupExport(lookup symbolLookup, b symbolBinding) (uintptr, error) {
	addr, err := lookup(b.name)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, errors.New("null address")
	}
	if b.kind == symbolDataPointer {
		addr = *(*uintptr)(unsafe.Pointer(addr))
		if addr == 0 {
			return 0, errNullData
		}
	}
	return addr, nil
}

// resolveSymbols looks up every export before binding any, so a missing
// export leaves all bindings untouched. Callers must hold callMu exclusively.
func resolveSymbols(lookup symbolLookup, library string) error {
	bindings := symbolBindings()
	addrs := make([]uintptr, len(bindings))
	for i, b := range bindings {
		addr, err := lookupExport(lookup, b)
		if errors.Is(err, errNullData) {
			return fmt.Errorf("granny data %q in %q library is null", b.name, library)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", missingSymbolError(b.name, library), err)
		}
		addrs[i] = addr
	}

	for i, b := range bindings {
		switch b.kind {
		case symbolFunction:
			purego.RegisterFunc(b.fn, addrs[i])
		default:
			*b.addr = addrs[i]
		}
		logger.Debug().Str("symbol", b.name).Str("address", fmt.Sprintf("%#x", addrs[i])).Msg("bound granny export")
	}
	return nil
}

// missingSymbols reports every export resolveSymbols would reject.
func missingSymbols(lookup symbolLookup) []string {
	var missing []string
	for _, b := range symbolBindings() {
		if _, err := lookupExport(lookup, b); err != nil {
			missing = append(missing, b.name)
		}
	}
	return missing
}

// clearSymbols drops every binding. Callers must hold callMu exclusively.
func clearSymbols() {
	for _, b := range symbolBindings() {
		switch b.kind {
		case symbolFunction:
			fn := reflect.ValueOf(b.fn).Elem()
			fn.Set(reflect.Zero(fn.Type()))
		default:
			*b.addr = 0
		}
	}
}

// symbolsBound reports whether every binding is set. Callers must hold callMu.
func symbolsBound() bool {
	for _, b := range symbolBindings() {
		switch b.kind {
		case symbolFunction:
			if reflect.ValueOf(b.fn).Elem().IsNil() {
				return false
			}
		default:
			if *b.addr == 0 {
				return false
			}
		}
	}
	return true
}
