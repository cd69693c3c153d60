package granny

import "errors"

// CoordinateSystem describes the axes and scale a file should be converted to.
type CoordinateSystem struct {
	UnitsPerMeter float32
	Origin        Triple
	Right         Triple
	Up            Triple
	Back          Triple
}

// BasisConversion is the result of ComputeBasisConversion and the input of TransformFile.
type BasisConversion struct {
	Affine        [3]float32
	Linear        [9]float32
	InverseLinear [9]float32
}

// BuildCompositeTransform4x4 composes a decomposed transform into a
// column-major 4x4 matrix.
func BuildCompositeTransform4x4(t *Transform) (Matrix4x4, error) {
	var m Matrix4x4
	if t == nil {
		return m, errors.New("transform is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if buildCompositeTransform4x4Func == nil {
		return m, ErrNotInitialized
	}
	buildCompositeTransform4x4Func(t, &m)
	return m, nil
}

// ComputeBasisConversion computes the transform from the file's authored
// coordinate system to target. The bool result is false when the runtime
// finds no conversion (for example a file without art tool info).
func ComputeBasisConversion(info *FileInfo, target CoordinateSystem) (BasisConversion, bool, error) {
	var conv BasisConversion
	if info == nil {
		return conv, false, errors.New("file info is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if computeBasisConversionFunc == nil {
		return conv, false, ErrNotInitialized
	}

	ok := computeBasisConversionFunc(info, target.UnitsPerMeter,
		&target.Origin, &target.Right, &target.Up, &target.Back,
		&conv.Affine, &conv.Linear, &conv.InverseLinear) != 0
	return conv, ok, nil
}

// TransformFile applies conv to every object in the file in place.
func TransformFile(info *FileInfo, conv *BasisConversion, affineTolerance, linearTolerance float32, flags TransformFileFlags) error {
	if info == nil {
		return errors.New("file info is nil")
	}
	if conv == nil {
		return errors.New("basis conversion is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if transformFileFunc == nil {
		return ErrNotInitialized
	}
	transformFileFunc(info, &conv.Affine, &conv.Linear, &conv.InverseLinear, affineTolerance, linearTolerance, uint32(flags))
	return nil
}

// ConvertFile computes the conversion to target and applies it with the
// tolerances the runtime's exporters use.
func ConvertFile(info *FileInfo, target CoordinateSystem, flags TransformFileFlags) (bool, error) {
	conv, ok, err := ComputeBasisConversion(info, target)
	if err != nil || !ok {
		return false, err
	}
	if err := TransformFile(info, &conv, 1e-5, 1e-5, flags); err != nil {
		return false, err
	}
	return true, nil
}
