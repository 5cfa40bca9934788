// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the render-target handle consumed by chart
// backends.
//
// A Surface is deliberately minimal: the engine needs the target size, its
// pixel format, and either CPU pixel access ([ImageSurface]) or a platform
// windowing handle ([GPUSurface]). Everything else — container sizing,
// resize observation, DPI detection — is the host application's concern.
package surface

import (
	"github.com/gogpu/gputypes"
)

// Surface is the render-target handle passed to the engine each frame.
//
// Surfaces are not thread-safe; a surface belongs to one chart engine at
// a time. At most one renderer handle is active per surface.
type Surface interface {
	// Width returns the target width in device pixels.
	Width() int

	// Height returns the target height in device pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Close releases resources associated with the surface.
	// Close is idempotent.
	Close() error
}

// Resizable is an optional interface for surfaces whose dimensions can
// change. Backends reconfigure their target bindings when the surface
// size no longer matches the last configured size.
type Resizable interface {
	Surface

	// Resize changes the surface dimensions. Existing content is
	// discarded.
	Resize(width, height int) error
}
