// Package export writes decoded textures to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Format is an output image format.
type Format string

const (
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatPNG  Format = "png"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatWebP, FormatTGA, FormatPNG}

// ParseFormat accepts a format name, case-insensitively and with an
// optional leading dot.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for _, f := range Formats {
		if name == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q (expected webp, tga or png)", s)
}

// Extension returns the file extension of f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", string(f))
	}
}

// Fit scales img down so neither side exceeds maxSize, keeping the aspect
// ratio. img is returned unchanged when it already fits or maxSize is not positive.
func Fit(img *image.NRGBA, maxSize int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FileName derives an output file name from a texture's source file name.
// Both slash styles are treated as separators since .gr2 files usually carry
// Windows paths. An empty or unusable name falls back to texture_<index>.
func FileName(source string, index int, f Format) string {
	if i := strings.LastIndexAny(source, `/\`); i >= 0 {
		source = source[i+1:]
	}
	if ext := filepath.Ext(source); ext != "" {
		source = strings.TrimSuffix(source, ext)
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, source)
	name = strings.Trim(name, "._")

	if name == "" {
		name = "texture_" + strconv.Itoa(index)
	}
	return name + f.Extension()
}

// WriteFile encodes img to path, creating parent directories as needed.
func WriteFile(path string, img image.Image, f Format) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, closeErr))
		}
	}()

	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("%s encode: %w", strings.ToUpper(string(f)), err)
	}
	return nil
}
