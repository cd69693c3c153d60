package granny

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGoToCstring(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"simple ascii", "hello"},
		{"file path", `C:\art\hero\hero.gr2`},
		{"with special chars", "hello\tworld\n"},
		{"unicode", "Héros_Épée"},
		{"long string", strings.Repeat("a", 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bytes, ptr := GoToCstring(tt.input)

			if len(bytes) != len(tt.input)+1 {
				t.Errorf("expected byte slice length %d, got %d", len(tt.input)+1, len(bytes))
			}
			if bytes[len(bytes)-1] != 0 {
				t.Error("expected null terminator at end of byte slice")
			}
			if ptr == 0 {
				t.Error("expected non-null pointer")
			}
			if string(bytes[:len(bytes)-1]) != tt.input {
				t.Errorf("expected content %q, got %q", tt.input, string(bytes[:len(bytes)-1]))
			}
		})
	}
}

func TestCstringToGo(t *testing.T) {
	a := newTestArena(t, 1<<16)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"simple ascii", "hello", "hello"},
		{"bone name", "Bip01 L Forearm", "Bip01 L Forearm"},
		{"unicode", "Héros_Épée", "Héros_Épée"},
		{"embedded null truncates", "Mesh\x00Hidden", "Mesh"},
		{"long string", strings.Repeat("x", 10000), strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CstringToGo(a.cstring(tt.input))

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
			if !utf8.ValidString(result) {
				t.Error("result is not valid UTF-8")
			}
		})
	}
}

func TestCstringToGoNullPointer(t *testing.T) {
	result := CstringToGo(0)
	if result != "" {
		t.Errorf("expected empty string for null pointer, got %q", result)
	}
}

func TestCstringToGoInvalidLowAddresses(t *testing.T) {
	testCases := []struct {
		name string
		ptr  uintptr
	}{
		{"address 1", 1},
		{"address 100", 100},
		{"address 1000", 1000},
		{"address 4095", 4095},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := CstringToGo(tc.ptr)
			if result != "" {
				t.Errorf("expected empty string for invalid low address %d, got %q", tc.ptr, result)
			}
		})
	}
}

func TestCstringToGoUnterminatedIsBounded(t *testing.T) {
	a := newTestArena(t, maxCStringLen+4096)
	fill, base := arenaArray[byte](a, maxCStringLen+16)
	for i := range fill {
		fill[i] = 'z'
	}

	result := CstringToGo(base)
	if len(result) != maxCStringLen {
		t.Fatalf("expected scan to stop at %d bytes, got %d", maxCStringLen, len(result))
	}
}

func TestGoToCstringPreservesBytes(t *testing.T) {
	input := "test string"
	bytes1, ptr1 := GoToCstring(input)
	bytes2, ptr2 := GoToCstring(input)

	if ptr1 == ptr2 {
		t.Error("expected different pointers for different calls")
	}
	if string(bytes1) != string(bytes2) {
		t.Errorf("expected identical contents, got %q and %q", bytes1, bytes2)
	}
}

func BenchmarkGoToCstring(b *testing.B) {
	tests := []struct {
		name  string
		input string
	}{
		{"short", "hello"},
		{"medium", strings.Repeat("a", 100)},
		{"long", strings.Repeat("b", 1000)},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = GoToCstring(tt.input)
			}
		})
	}
}
