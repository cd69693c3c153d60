package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"default hides debug", false, false},
		{"verbose shows debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.verbose)

			logger.Debug().Str("symbol", "GrannyReadEntireFile").Msg("bound granny export")
			logger.Info().Msg("granny library initialized")

			out := buf.String()
			if got := strings.Contains(out, "bound granny export"); got != tt.wantDebug {
				t.Errorf("expected debug output %v, got %q", tt.wantDebug, out)
			}
			if !strings.Contains(out, "granny library initialized") {
				t.Errorf("expected info output, got %q", out)
			}
		})
	}
}

func TestNewWritesPlainTextToBuffers(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Info().Str("file", "hero.gr2").Msg("reading")

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes for a non-terminal writer, got %q", out)
	}
	if !strings.Contains(out, "file=hero.gr2") {
		t.Errorf("expected structured field in output, got %q", out)
	}
}
