package granny

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearLocateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envLibraryPath, "")
	t.Setenv(envLibraryDir, "")
	t.Setenv(envDisableSearch, "")
}

func writeFakeLibrary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("granny"), 0o644); err != nil {
		t.Fatalf("failed to write test library: %v", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("failed to resolve test library path: %v", err)
	}
	return abs
}

func TestDefaultLibraryName(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{goos: "windows", goarch: "amd64", want: "granny2_x64.dll"},
		{goos: "linux", goarch: "amd64", want: "libgranny2.so"},
		{goos: "linux", goarch: "arm64", want: "libgranny2.so"},
		{goos: "darwin", goarch: "arm64", want: "libgranny2.dylib"},
		{goos: "windows", goarch: "386", wantErr: true},
		{goos: "linux", goarch: "386", wantErr: true},
		{goos: "plan9", goarch: "amd64", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.goos+"/"+tc.goarch, func(t *testing.T) {
			got, err := DefaultLibraryName(tc.goos, tc.goarch)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected library name: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocateLibraryWithExplicitPath(t *testing.T) {
	clearLocateEnv(t)
	want := writeFakeLibrary(t, t.TempDir(), "custom-granny.dll")

	got, err := LocateLibrary(WithLibraryPath(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected resolved path: got %q, want %q", got, want)
	}
}

func TestLocateLibraryExplicitPathMustExist(t *testing.T) {
	clearLocateEnv(t)

	_, err := LocateLibrary(WithLibraryPath(filepath.Join(t.TempDir(), "missing.dll")))
	if err == nil {
		t.Fatal("expected error for a missing explicit path")
	}
}

func TestLocateLibraryFromEnvPath(t *testing.T) {
	clearLocateEnv(t)
	want := writeFakeLibrary(t, t.TempDir(), "granny2_x64.dll")
	t.Setenv(envLibraryPath, " "+want+" ")

	got, err := LocateLibrary(WithSearchDisabled(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected resolved path: got %q, want %q", got, want)
	}
}

func TestLocateLibraryOptionOverridesEnvPath(t *testing.T) {
	clearLocateEnv(t)
	dir := t.TempDir()
	t.Setenv(envLibraryPath, writeFakeLibrary(t, dir, "env.dll"))
	want := writeFakeLibrary(t, dir, "option.dll")

	got, err := LocateLibrary(WithLibraryPath(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected option to win: got %q, want %q", got, want)
	}
}

func TestLocateLibrarySearchDirs(t *testing.T) {
	clearLocateEnv(t)
	empty := t.TempDir()
	dir := t.TempDir()
	want := writeFakeLibrary(t, dir, "libgranny2.so")

	got, err := LocateLibrary(WithSearchDirs(empty, dir), withPlatform("linux", "amd64"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected resolved path: got %q, want %q", got, want)
	}
}

func TestLocateLibraryFromEnvDir(t *testing.T) {
	clearLocateEnv(t)
	dir := t.TempDir()
	want := writeFakeLibrary(t, dir, "granny2_x64.dll")
	t.Setenv(envLibraryDir, dir)

	got, err := LocateLibrary(withPlatform("windows", "amd64"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected resolved path: got %q, want %q", got, want)
	}
}

func TestLocateLibrarySkipsEmptyCandidates(t *testing.T) {
	clearLocateEnv(t)
	first := t.TempDir()
	if err := os.WriteFile(filepath.Join(first, "libgranny2.dylib"), nil, 0o644); err != nil {
		t.Fatalf("failed to write empty library: %v", err)
	}
	second := t.TempDir()
	want := writeFakeLibrary(t, second, "libgranny2.dylib")

	got, err := LocateLibrary(WithSearchDirs(first, second), withPlatform("darwin", "arm64"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected the non-empty candidate: got %q, want %q", got, want)
	}
}

func TestLocateLibraryNotFound(t *testing.T) {
	clearLocateEnv(t)

	_, err := LocateLibrary(WithSearchDirs(t.TempDir()), withPlatform("linux", "arm64"))
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("expected ErrLibraryNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "libgranny2.so") {
		t.Errorf("expected library name in error, got %v", err)
	}
}

func TestLocateLibrarySearchDisabled(t *testing.T) {
	clearLocateEnv(t)
	dir := t.TempDir()
	writeFakeLibrary(t, dir, "granny2_x64.dll")
	t.Setenv(envDisableSearch, "yes")

	_, err := LocateLibrary(WithSearchDirs(dir), withPlatform("windows", "amd64"))
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("expected ErrLibraryNotFound with search disabled, got %v", err)
	}
}

func TestLocateLibraryUnsupportedPlatform(t *testing.T) {
	clearLocateEnv(t)

	_, err := LocateLibrary(withPlatform("linux", "386"))
	if err == nil || !strings.Contains(err.Error(), "unsupported platform") {
		t.Fatalf("expected unsupported platform error, got %v", err)
	}
}

func TestLocateOptionsRejectEmpty(t *testing.T) {
	clearLocateEnv(t)

	if _, err := LocateLibrary(WithLibraryPath("  ")); err == nil {
		t.Error("expected error for an empty library path option")
	}
	if _, err := LocateLibrary(WithSearchDirs("")); err == nil {
		t.Error("expected error for an empty search directory")
	}
}

func TestResolveLocateConfigRejectsInvalidDisableSearchEnv(t *testing.T) {
	clearLocateEnv(t)
	t.Setenv(envDisableSearch, "sometimes")

	_, err := resolveLocateConfig()
	if err == nil {
		t.Fatal("expected invalid env parse error")
	}
	if !strings.Contains(err.Error(), envDisableSearch) {
		t.Fatalf("expected variable name in error, got: %v", err)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Setenv(envDisableSearch, "")
	parsed, err := parseBoolEnv(envDisableSearch)
	if err != nil || parsed {
		t.Fatalf("expected default false with no error, got parsed=%v err=%v", parsed, err)
	}

	tests := []struct {
		value     string
		want      bool
		expectErr bool
	}{
		{value: "true", want: true},
		{value: "false", want: false},
		{value: "1", want: true},
		{value: "0", want: false},
		{value: "yes", want: true},
		{value: "no", want: false},
		{value: "on", want: true},
		{value: "off", want: false},
		{value: " ON ", want: true},
		{value: "disabled", expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(envDisableSearch, tc.value)
			got, err := parseBoolEnv(envDisableSearch)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected parsed value: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateLibraryFile(t *testing.T) {
	if _, err := validateLibraryFile("   "); err == nil {
		t.Fatalf("expected empty library path error")
	}

	dir := t.TempDir()
	if _, err := validateLibraryFile(dir); err == nil {
		t.Fatalf("expected directory library path error")
	}

	zeroPath := filepath.Join(dir, "granny-empty.dll")
	if err := os.WriteFile(zeroPath, nil, 0o644); err != nil {
		t.Fatalf("failed to create zero-size library file: %v", err)
	}
	if _, err := validateLibraryFile(zeroPath); err == nil {
		t.Fatalf("expected zero-size library file error")
	}

	want := writeFakeLibrary(t, dir, "granny2_x64.dll")
	resolved, err := validateLibraryFile(want)
	if err != nil {
		t.Fatalf("unexpected valid library file error: %v", err)
	}
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q, want %q", resolved, want)
	}
}

func TestInitializeLibraryWithDiscoveryInitializedDifferentPath(t *testing.T) {
	clearLocateEnv(t)
	resetLibraryState()
	defer resetLibraryState()

	dir := t.TempDir()
	current := writeFakeLibrary(t, dir, "current.dll")
	other := writeFakeLibrary(t, dir, "other.dll")

	mu.Lock()
	refCount = 1
	libPath = current
	mu.Unlock()

	err := InitializeLibraryWithDiscovery(WithLibraryPath(other))
	if err == nil {
		t.Fatalf("expected error for initialized library with different path")
	}
	if !strings.Contains(err.Error(), "cannot change library path") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInitializeLibraryWithDiscoverySamePathIncrements(t *testing.T) {
	clearLocateEnv(t)
	resetLibraryState()
	defer resetLibraryState()

	current := writeFakeLibrary(t, t.TempDir(), "current.dll")

	mu.Lock()
	refCount = 1
	libPath = current
	mu.Unlock()

	if err := InitializeLibraryWithDiscovery(WithLibraryPath(current)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if refCount != 2 {
		t.Fatalf("expected refCount 2, got %d", refCount)
	}
}
