package granny

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

// Curve is any curve the runtime can read: a Curve2 in runtime or Go memory,
// a PackedCurve inside a track, or a StaticCurve.
type Curve interface {
	curveAddr() uintptr
}

func (c *Curve2) curveAddr() uintptr {
	return uintptr(unsafe.Pointer(c))
}

func (c *PackedCurve) curveAddr() uintptr {
	return uintptr(unsafe.Pointer(c))
}

func curveAddr(c Curve) (uintptr, error) {
	if c == nil {
		return 0, errors.New("curve is nil")
	}
	addr := c.curveAddr()
	if addr == 0 {
		return 0, errors.New("curve is nil")
	}
	return addr, nil
}

// StaticCurve is a DaK32fC32f curve whose knots and controls live in Go
// memory. It stays pinned until Close.
type StaticCurve struct {
	curve    Curve2
	data     CurveDataDaK32fC32f
	knots    []float32
	controls []float32
	pinner   runtime.Pinner
}

func (s *StaticCurve) curveAddr() uintptr {
	if s == nil || s.knots == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(&s.curve))
}

// Curve returns the curve as the runtime sees it.
func (s *StaticCurve) Curve() *Curve2 {
	return &s.curve
}

// Close unpins the curve's memory. The curve must not be used afterwards.
func (s *StaticCurve) Close() {
	if s == nil {
		return
	}
	s.pinner.Unpin()
	s.knots = nil
	s.controls = nil
}

// MakeStaticDaK32fC32f builds a keyframed curve over copies of knots and
// controls. controls holds dimension values per knot.
func MakeStaticDaK32fC32f(knots, controls []float32, degree, dimension int) (*StaticCurve, error) {
	if len(knots) == 0 {
		return nil, errors.New("curve needs at least one knot")
	}
	if dimension <= 0 {
		return nil, fmt.Errorf("curve dimension must be positive, got %d", dimension)
	}
	if degree < 0 || degree > 255 {
		return nil, fmt.Errorf("curve degree must be within 0..255, got %d", degree)
	}
	if len(controls) != len(knots)*dimension {
		return nil, fmt.Errorf("curve controls length mismatch: got %d, expected %d for %d knots of dimension %d",
			len(controls), len(knots)*dimension, len(knots), dimension)
	}

	s := &StaticCurve{
		knots:    append([]float32(nil), knots...),
		controls: append([]float32(nil), controls...),
	}
	s.pinner.Pin(s)
	s.pinner.Pin(&s.knots[0])
	s.pinner.Pin(&s.controls[0])

	callMu.RLock()
	defer callMu.RUnlock()

	if curveMakeStaticDaK32fC32fFunc == nil {
		s.pinner.Unpin()
		return nil, ErrNotInitialized
	}
	curveMakeStaticDaK32fC32fFunc(&s.curve, &s.data, int32(len(knots)), int32(degree), int32(dimension), &s.knots[0], &s.controls[0])
	return s, nil
}

// ConvertToDaK32fC32f converts any curve to the DaK32fC32f format. identity
// fills dimensions missing from constant or identity curves and may be nil.
// The result is allocated by the runtime; release it with FreeCurve.
func ConvertToDaK32fC32f(c Curve, identity []float32) (*Curve2, error) {
	addr, err := curveAddr(c)
	if err != nil {
		return nil, err
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if curveConvertToDaK32fC32fFunc == nil {
		return nil, ErrNotInitialized
	}
	converted := curveConvertToDaK32fC32fFunc(addr, firstOrNil(identity))
	runtime.KeepAlive(c)
	if converted == 0 {
		return nil, errors.New("granny could not convert curve")
	}
	return object[Curve2](converted), nil
}

// FreeCurve releases a curve returned by ConvertToDaK32fC32f.
func FreeCurve(c *Curve2) error {
	if c == nil {
		return nil
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if freeCurveFunc == nil {
		return ErrNotInitialized
	}
	freeCurveFunc(c.curveAddr())
	return nil
}

func curveQuery(c Curve, fn *func(curve uintptr) int32) (int, error) {
	addr, err := curveAddr(c)
	if err != nil {
		return 0, err
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if *fn == nil {
		return 0, ErrNotInitialized
	}
	result := (*fn)(addr)
	runtime.KeepAlive(c)
	return int(result), nil
}

// CurveKnotCount returns the number of knots in the curve.
func CurveKnotCount(c Curve) (int, error) {
	return curveQuery(c, &curveGetKnotCountFunc)
}

// CurveDimension returns the number of values per control.
func CurveDimension(c Curve) (int, error) {
	return curveQuery(c, &curveGetDimensionFunc)
}

// CurveDegree returns the curve's degree.
func CurveDegree(c Curve) (int, error) {
	return curveQuery(c, &curveGetDegreeFunc)
}

// CurveIsKeyframed reports whether the curve stores one control per knot.
func CurveIsKeyframed(c Curve) (bool, error) {
	addr, err := curveAddr(c)
	if err != nil {
		return false, err
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if curveIsKeyframedFunc == nil {
		return false, ErrNotInitialized
	}
	keyframed := curveIsKeyframedFunc(addr) != 0
	runtime.KeepAlive(c)
	return keyframed, nil
}

// CurveInitializeFormat writes the curve data header matching the curve's
// variant type.
func CurveInitializeFormat(c *Curve2) error {
	if c == nil {
		return errors.New("curve is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if curveInitializeFormatFunc == nil {
		return ErrNotInitialized
	}
	curveInitializeFormatFunc(c.curveAddr())
	return nil
}

// CurveEvaluation holds the parameters shared by EvaluateCurveAtT and
// EvaluateCurveAtKnotIndex.
type CurveEvaluation struct {
	Dimension     int
	Normalize     bool
	BackwardsLoop bool
	ForwardsLoop  bool
	Duration      float32
	// Identity fills dimensions the curve does not store; may be nil.
	Identity []float32
}

func (e CurveEvaluation) validate() error {
	if e.Dimension <= 0 {
		return fmt.Errorf("evaluation dimension must be positive, got %d", e.Dimension)
	}
	if e.Identity != nil && len(e.Identity) < e.Dimension {
		return fmt.Errorf("identity vector has %d values, need %d", len(e.Identity), e.Dimension)
	}
	return nil
}

// EvaluateCurveAtT samples the curve at time t.
func EvaluateCurveAtT(c Curve, eval CurveEvaluation, t float32) ([]float32, error) {
	addr, err := curveAddr(c)
	if err != nil {
		return nil, err
	}
	if err := eval.validate(); err != nil {
		return nil, err
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if evaluateCurveAtTFunc == nil {
		return nil, ErrNotInitialized
	}
	result := make([]float32, eval.Dimension)
	evaluateCurveAtTFunc(int32(eval.Dimension), eval.Normalize, eval.BackwardsLoop, addr, eval.ForwardsLoop,
		eval.Duration, t, &result[0], firstOrNil(eval.Identity))
	runtime.KeepAlive(c)
	return result, nil
}

// EvaluateCurveAtKnotIndex samples the curve at time t starting the knot
// search at knotIndex.
func EvaluateCurveAtKnotIndex(c Curve, eval CurveEvaluation, knotIndex int, t float32) ([]float32, error) {
	addr, err := curveAddr(c)
	if err != nil {
		return nil, err
	}
	if err := eval.validate(); err != nil {
		return nil, err
	}
	if knotIndex < 0 {
		return nil, fmt.Errorf("knot index must not be negative, got %d", knotIndex)
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if evaluateCurveAtKnotIndexFunc == nil {
		return nil, ErrNotInitialized
	}
	result := make([]float32, eval.Dimension)
	evaluateCurveAtKnotIndexFunc(int32(eval.Dimension), eval.Normalize, eval.BackwardsLoop, addr, eval.ForwardsLoop,
		eval.Duration, int32(knotIndex), t, &result[0], firstOrNil(eval.Identity))
	runtime.KeepAlive(c)
	return result, nil
}

// FindKnot returns the index of the knot interval containing t.
func FindKnot(knots []float32, t float32) (int, error) {
	if len(knots) == 0 {
		return 0, errors.New("knots cannot be empty")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if findKnotFunc == nil {
		return 0, ErrNotInitialized
	}
	return int(findKnotFunc(int32(len(knots)), &knots[0], t)), nil
}

// FindCloseKnot is FindKnot searching outward from startIndex.
func FindCloseKnot(knots []float32, t float32, startIndex int) (int, error) {
	if len(knots) == 0 {
		return 0, errors.New("knots cannot be empty")
	}
	if startIndex < 0 || startIndex >= len(knots) {
		return 0, fmt.Errorf("start index %d out of range for %d knots", startIndex, len(knots))
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if findCloseKnotFunc == nil {
		return 0, ErrNotInitialized
	}
	return int(findCloseKnotFunc(int32(len(knots)), &knots[0], t, int32(startIndex))), nil
}

func identityVector(addr uintptr, n int) []float32 {
	if addr == 0 {
		return nil
	}
	return append([]float32(nil), slice[float32](addr, int32(n))...)
}

func readIdentity(addr *uintptr, n int) []float32 {
	callMu.RLock()
	defer callMu.RUnlock()
	return identityVector(*addr, n)
}

// CurveIdentityPosition returns a copy of the runtime's identity position
// (3 values), or nil before InitializeLibrary.
func CurveIdentityPosition() []float32 {
	return readIdentity(&curveIdentityPositionAddr, 3)
}

// CurveIdentityOrientation returns a copy of the identity quaternion (4 values).
func CurveIdentityOrientation() []float32 {
	return readIdentity(&curveIdentityOrientationAddr, 4)
}

// CurveIdentityScaleShear returns a copy of the identity 3x3 scale/shear (9 values).
func CurveIdentityScaleShear() []float32 {
	return readIdentity(&curveIdentityScaleShearAddr, 9)
}

// CurveIdentityScale returns a copy of the identity scale (3 values).
func CurveIdentityScale() []float32 {
	return readIdentity(&curveIdentityScaleAddr, 3)
}

// CurveDataDaIdentityType returns the runtime's type definition for identity
// curve data, or nil before InitializeLibrary.
func CurveDataDaIdentityType() *DataTypeDefinition {
	callMu.RLock()
	defer callMu.RUnlock()
	return object[DataTypeDefinition](curveDataDaIdentityTypeAddr)
}

func firstOrNil(values []float32) *float32 {
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}
