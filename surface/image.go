// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// ImageSurface is a CPU-backed render target over an *image.RGBA.
// It is the target type consumed by the software backend and is always
// available, making it the natural final-tier surface.
type ImageSurface struct {
	img    *image.RGBA
	closed bool
}

// NewImageSurface creates a CPU-backed surface of the given size in
// device pixels.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Width returns the surface width in device pixels.
func (s *ImageSurface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height in device pixels.
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

// Format returns the pixel format (always RGBA8).
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// RGBA returns the backing image. The software backend draws into it
// directly; callers may read it after Render returns (the software tier
// is synchronous).
func (s *ImageSurface) RGBA() *image.RGBA { return s.img }

// Resize reallocates the backing image. Content is discarded.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Close releases the backing image. Idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	s.img = image.NewRGBA(image.Rect(0, 0, 0, 0))
	return nil
}

var (
	_ Surface   = (*ImageSurface)(nil)
	_ Resizable = (*ImageSurface)(nil)
)
