package granny

import (
	"errors"
	"fmt"
	"image"
	"unsafe"
)

var errNilTexture = errors.New("texture is nil")

// TextureHasAlpha reports whether the texture's pixel layout carries alpha.
func TextureHasAlpha(tex *Texture) (bool, error) {
	if tex == nil {
		return false, errNilTexture
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if textureHasAlphaFunc == nil {
		return false, ErrNotInitialized
	}
	return textureHasAlphaFunc(tex) != 0, nil
}

// CopyTextureImage decodes one MIP level into dst using layout. dst must
// hold at least height rows of stride bytes.
func CopyTextureImage(tex *Texture, imageIndex, mipIndex int, layout *PixelLayout, width, height, stride int, dst []byte) error {
	if tex == nil {
		return errNilTexture
	}
	if layout == nil {
		return errors.New("pixel layout is nil")
	}
	if err := checkTextureIndex(tex, imageIndex, mipIndex); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid destination size %dx%d", width, height)
	}
	if stride < width*int(layout.BytesPerPixel) {
		return fmt.Errorf("stride %d too small for %d pixels of %d bytes", stride, width, layout.BytesPerPixel)
	}
	if need := stride * height; len(dst) < need {
		return fmt.Errorf("destination holds %d bytes, need %d", len(dst), need)
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if copyTextureImageFunc == nil {
		return ErrNotInitialized
	}
	copyTextureImageFunc(tex, int32(imageIndex), int32(mipIndex), layout,
		int32(width), int32(height), int32(stride), unsafe.Pointer(&dst[0]))
	return nil
}

// RGBA8888PixelFormat returns a copy of the runtime's 32-bit RGBA layout,
// or nil before InitializeLibrary.
func RGBA8888PixelFormat() *PixelLayout {
	callMu.RLock()
	defer callMu.RUnlock()
	return copyLayout(rgba8888PixelFormatAddr)
}

// RGB888PixelFormat returns a copy of the runtime's 24-bit RGB layout.
func RGB888PixelFormat() *PixelLayout {
	callMu.RLock()
	defer callMu.RUnlock()
	return copyLayout(rgb888PixelFormatAddr)
}

func copyLayout(addr uintptr) *PixelLayout {
	layout := object[PixelLayout](addr)
	if layout == nil {
		return nil
	}
	out := *layout
	return &out
}

// MIPSize returns the dimensions of a MIP level of the texture.
func (t *Texture) MIPSize(mipIndex int) (width, height int) {
	width, height = int(t.Width)>>mipIndex, int(t.Height)>>mipIndex
	return max(width, 1), max(height, 1)
}

func checkTextureIndex(tex *Texture, imageIndex, mipIndex int) error {
	img := tex.Image(imageIndex)
	if img == nil {
		return fmt.Errorf("texture image %d out of range (%d images)", imageIndex, tex.ImageCount)
	}
	if mipIndex < 0 || mipIndex >= int(img.MIPLevelCount) {
		return fmt.Errorf("texture mip level %d out of range (%d levels)", mipIndex, img.MIPLevelCount)
	}
	return nil
}

// DecodeTexture converts one MIP level of a texture to an image.NRGBA.
func DecodeTexture(tex *Texture, imageIndex, mipIndex int) (*image.NRGBA, error) {
	if tex == nil {
		return nil, errNilTexture
	}
	if tex.Width <= 0 || tex.Height <= 0 {
		return nil, fmt.Errorf("texture has invalid size %dx%d", tex.Width, tex.Height)
	}
	if err := checkTextureIndex(tex, imageIndex, mipIndex); err != nil {
		return nil, err
	}

	callMu.RLock()
	defer callMu.RUnlock()

	if copyTextureImageFunc == nil || rgba8888PixelFormatAddr == 0 {
		return nil, ErrNotInitialized
	}

	width, height := tex.MIPSize(mipIndex)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copyTextureImageFunc(tex, int32(imageIndex), int32(mipIndex), object[PixelLayout](rgba8888PixelFormatAddr),
		int32(width), int32(height), int32(img.Stride), unsafe.Pointer(&img.Pix[0]))
	return img, nil
}
