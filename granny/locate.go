package granny

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	envLibraryPath   = "GRANNY_LIB_PATH"
	envLibraryDir    = "GRANNY_LIB_DIR"
	envDisableSearch = "GRANNY_DISABLE_SEARCH"
)

// ErrLibraryNotFound is returned by LocateLibrary when no candidate exists.
var ErrLibraryNotFound = errors.New("granny runtime library not found")

// LocateOption configures LocateLibrary.
type LocateOption func(*locateConfig) error

type locateConfig struct {
	libraryPath   string
	searchDirs    []string
	disableSearch bool
	goos          string
	goarch        string
}

// WithLibraryPath forces LocateLibrary to use an existing library file.
func WithLibraryPath(path string) LocateOption {
	return func(cfg *locateConfig) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("library path cannot be empty")
		}
		cfg.libraryPath = path
		return nil
	}
}

// WithSearchDirs adds directories searched, in order, before the defaults.
func WithSearchDirs(dirs ...string) LocateOption {
	return func(cfg *locateConfig) error {
		for _, dir := range dirs {
			dir = strings.TrimSpace(dir)
			if dir == "" {
				return fmt.Errorf("search directory cannot be empty")
			}
			cfg.searchDirs = append(cfg.searchDirs, dir)
		}
		return nil
	}
}

// WithSearchDisabled restricts LocateLibrary to an explicit library path.
func WithSearchDisabled(disable bool) LocateOption {
	return func(cfg *locateConfig) error {
		cfg.disableSearch = disable
		return nil
	}
}

func withPlatform(goos, goarch string) LocateOption {
	return func(cfg *locateConfig) error {
		cfg.goos = goos
		cfg.goarch = goarch
		return nil
	}
}

// DefaultLibraryName returns the runtime's file name on a platform.
func DefaultLibraryName(goos, goarch string) (string, error) {
	switch goos {
	case "windows":
		if goarch == "amd64" {
			return "granny2_x64.dll", nil
		}
	case "linux":
		if goarch == "amd64" || goarch == "arm64" {
			return "libgranny2.so", nil
		}
	case "darwin":
		if goarch == "amd64" || goarch == "arm64" {
			return "libgranny2.dylib", nil
		}
	}
	return "", fmt.Errorf("unsupported platform for the granny runtime: GOOS=%s GOARCH=%s", goos, goarch)
}

// LocateLibrary resolves an absolute path to the Granny runtime.
//
// An explicit path (WithLibraryPath, then GRANNY_LIB_PATH) wins and must
// exist. Otherwise the platform's default file name is searched for in the
// WithSearchDirs directories, GRANNY_LIB_DIR, the working directory and the
// executable's directory.
func LocateLibrary(opts ...LocateOption) (string, error) {
	cfg, err := resolveLocateConfig(opts...)
	if err != nil {
		return "", err
	}

	if cfg.libraryPath != "" {
		return validateLibraryFile(cfg.libraryPath)
	}
	if cfg.disableSearch {
		return "", fmt.Errorf("%w: no library path given and search is disabled", ErrLibraryNotFound)
	}

	name, err := DefaultLibraryName(cfg.goos, cfg.goarch)
	if err != nil {
		return "", err
	}

	for _, dir := range cfg.searchDirs {
		candidate := filepath.Join(dir, name)
		if path, err := validateLibraryFile(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s not in %s", ErrLibraryNotFound, name, strings.Join(cfg.searchDirs, ", "))
}

// InitializeLibraryWithDiscovery locates the runtime, makes it the shared
// library path and initializes the library. Once initialized, discovery must
// find the same file again.
func InitializeLibraryWithDiscovery(opts ...LocateOption) error {
	path, err := LocateLibrary(opts...)
	if err != nil {
		return err
	}
	if err := SetSharedLibraryPath(path); err != nil {
		return err
	}
	return InitializeLibrary()
}

func resolveLocateConfig(opts ...LocateOption) (locateConfig, error) {
	disableSearch, err := parseBoolEnv(envDisableSearch)
	if err != nil {
		return locateConfig{}, err
	}

	cfg := locateConfig{
		libraryPath:   strings.TrimSpace(os.Getenv(envLibraryPath)),
		disableSearch: disableSearch,
		goos:          runtime.GOOS,
		goarch:        runtime.GOARCH,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return locateConfig{}, err
		}
	}

	cfg.searchDirs = append(cfg.searchDirs, defaultSearchDirs()...)
	return cfg, nil
}

func defaultSearchDirs() []string {
	var dirs []string
	if dir := strings.TrimSpace(os.Getenv(envLibraryDir)); dir != "" {
		dirs = append(dirs, dir)
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// validateLibraryFile returns the absolute path of a non-empty regular file.
func validateLibraryFile(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty library path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("library path %q: %w", path, err)
	}

	st, err := os.Stat(abs)
	switch {
	case err != nil:
		return "", fmt.Errorf("library %q: %w", abs, err)
	case !st.Mode().IsRegular():
		return "", fmt.Errorf("library %q is not a regular file", abs)
	case st.Size() == 0:
		return "", fmt.Errorf("library %q is empty", abs)
	}
	return abs, nil
}

var envBoolValues = map[string]bool{
	"1": true, "t": true, "true": true, "y": true, "yes": true, "on": true,
	"0": false, "f": false, "false": false, "n": false, "no": false, "off": false,
}

// parseBoolEnv reads a boolean environment variable. Unset means false.
func parseBoolEnv(name string) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, nil
	}
	if v, ok := envBoolValues[strings.ToLower(raw)]; ok {
		return v, nil
	}
	return false, fmt.Errorf("%s=%q is not a boolean; use true/false, 1/0, yes/no or on/off", name, raw)
}
