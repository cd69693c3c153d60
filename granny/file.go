package granny

import (
	"errors"
	"fmt"
	"runtime"
)

// ReadEntireFile loads and decompresses a .gr2 file. The returned File is
// owned by the runtime and must be released with Free.
func ReadEntireFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("file path cannot be empty")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if readEntireFileFunc == nil {
		return nil, ErrNotInitialized
	}

	pathBytes, pathPtr := GoToCstring(path)
	file := readEntireFileFunc(pathPtr)
	runtime.KeepAlive(pathBytes)

	if file == 0 {
		return nil, fmt.Errorf("granny could not read %q", path)
	}
	return object[File](file), nil
}

// Info returns the file's root object. The FileInfo lives inside the file's
// sections and is valid until Free.
func (f *File) Info() (*FileInfo, error) {
	if f == nil {
		return nil, errors.New("file is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if getFileInfoFunc == nil {
		return nil, ErrNotInitialized
	}

	info := getFileInfoFunc(f)
	if info == 0 {
		return nil, errors.New("file has no file info")
	}
	return object[FileInfo](info), nil
}

// Free releases the file and everything reachable from its FileInfo.
func (f *File) Free() error {
	if f == nil {
		return nil
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if freeFileFunc == nil {
		return ErrNotInitialized
	}
	freeFileFunc(f)
	return nil
}

// GetTotalTypeSize returns the byte size the runtime computes for a type.
func GetTotalTypeSize(def *DataTypeDefinition) (int, error) {
	if def == nil {
		return 0, errors.New("type definition is nil")
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if getTotalTypeSizeFunc == nil {
		return 0, ErrNotInitialized
	}
	return int(getTotalTypeSizeFunc(def)), nil
}
