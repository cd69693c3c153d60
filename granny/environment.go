package granny

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// mu guards the library state below.
	mu sync.Mutex
	// callMu is held shared by every call into the runtime and exclusively
	// while bindings change. Lock order is callMu -> mu.
	callMu sync.RWMutex

	refCount   int
	grannyLib  uintptr
	libPath    string
	libraryTag string
)

var (
	// ErrNotInitialized is returned by calls made before InitializeLibrary
	// succeeds or after the last ReleaseLibrary.
	ErrNotInitialized = errors.New("granny library not initialized")
	// ErrLibraryPathNotSet is returned by InitializeLibrary when no path was configured.
	ErrLibraryPathNotSet = errors.New("library path not set, call SetSharedLibraryPath first")
)

// SetSharedLibraryPath sets the path of the Granny runtime library.
// The path cannot change while the library is initialized.
func SetSharedLibraryPath(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if refCount > 0 && path != libPath {
		return fmt.Errorf("cannot change library path after the library is initialized")
	}
	libPath = path
	return nil
}

// InitializeLibrary loads the runtime and binds every export. Calls are
// reference counted; only the first one loads the library.
//
// A missing export fails the whole initialization: the library is unloaded
// and no binding is left set.
func InitializeLibrary() error {
	callMu.Lock()
	defer callMu.Unlock()
	mu.Lock()
	defer mu.Unlock()

	if refCount > 0 {
		refCount++
		return nil
	}

	if libPath == "" {
		return ErrLibraryPathNotSet
	}

	name := filepath.Base(libPath)
	if _, err := os.Stat(libPath); err != nil {
		return fmt.Errorf("could not locate %q library: %w", name, err)
	}

	handle, err := loadLibrary(libPath)
	if err != nil {
		return fmt.Errorf("could not load %q library: %w", name, err)
	}

	lookup := func(symbol string) (uintptr, error) {
		return getSymbol(handle, symbol)
	}
	if err := resolveSymbols(lookup, name); err != nil {
		clearSymbols()
		if closeErr := closeLibrary(handle); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to unload %q library: %w", name, closeErr))
		}
		logger.Error().Err(err).Str("library", libPath).Msg("granny library rejected")
		return err
	}

	grannyLib = handle
	libraryTag = name
	refCount = 1
	logger.Debug().Str("library", libPath).Int("exports", len(symbolBindings())).Msg("granny library initialized")
	return nil
}

// ReleaseLibrary drops one reference. The last release clears every binding
// and unloads the library, waiting for in-flight calls to return first.
func ReleaseLibrary() error {
	callMu.Lock()
	defer callMu.Unlock()
	mu.Lock()
	defer mu.Unlock()

	if refCount == 0 {
		return nil
	}

	refCount--
	if refCount > 0 {
		return nil
	}

	clearSymbols()
	handle := grannyLib
	grannyLib = 0
	libraryTag = ""
	if err := closeLibrary(handle); err != nil {
		return fmt.Errorf("failed to unload granny library: %w", err)
	}
	logger.Debug().Str("library", libPath).Msg("granny library released")
	return nil
}

// IsInitialized returns true if the library is loaded and bound.
func IsInitialized() bool {
	mu.Lock()
	defer mu.Unlock()
	return refCount > 0
}

// LibraryName returns the file name of the loaded library, or "" when none is loaded.
func LibraryName() string {
	mu.Lock()
	defer mu.Unlock()
	return libraryTag
}

// CheckLibrary loads the library at path, reports the required exports it
// lacks and unloads it again. It does not touch the package's bindings.
func CheckLibrary(path string) ([]string, error) {
	absPath, err := validateLibraryFile(path)
	if err != nil {
		return nil, err
	}

	handle, err := loadLibrary(absPath)
	if err != nil {
		return nil, fmt.Errorf("could not load %q library: %w", filepath.Base(absPath), err)
	}

	missing := missingSymbols(func(symbol string) (uintptr, error) {
		return getSymbol(handle, symbol)
	})

	if err := closeLibrary(handle); err != nil {
		return missing, fmt.Errorf("failed to unload %q library: %w", filepath.Base(absPath), err)
	}
	return missing, nil
}
