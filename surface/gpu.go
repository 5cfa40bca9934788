// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"
)

// GPUSurface wraps a platform windowing handle for GPU presentation.
// The host application builds the wgpu surface descriptor (e.g. via
// wgpuglfw.GetSurfaceDescriptor) and hands it over; the webgpu backend
// creates and configures the actual swapchain surface from it.
type GPUSurface struct {
	desc   *wgpu.SurfaceDescriptor
	width  int
	height int
}

// NewGPUSurface creates a GPU surface handle of the given size in device
// pixels.
func NewGPUSurface(desc *wgpu.SurfaceDescriptor, width, height int) (*GPUSurface, error) {
	if desc == nil {
		return nil, fmt.Errorf("surface: nil surface descriptor")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	return &GPUSurface{desc: desc, width: width, height: height}, nil
}

// Descriptor returns the platform surface descriptor.
func (s *GPUSurface) Descriptor() *wgpu.SurfaceDescriptor { return s.desc }

// Width returns the surface width in device pixels.
func (s *GPUSurface) Width() int { return s.width }

// Height returns the surface height in device pixels.
func (s *GPUSurface) Height() int { return s.height }

// Format returns the preferred swapchain format. The backend may override
// it with the first format the surface capabilities report.
func (s *GPUSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Resize records new dimensions. The webgpu backend reconfigures the
// swapchain before the next frame when the recorded size changes.
func (s *GPUSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	s.width = width
	s.height = height
	return nil
}

// Close is a no-op for GPU surfaces: the swapchain is owned by the
// renderer handle, the windowing handle by the host.
func (s *GPUSurface) Close() error { return nil }

var (
	_ Surface   = (*GPUSurface)(nil)
	_ Resizable = (*GPUSurface)(nil)
)
