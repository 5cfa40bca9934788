// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/transform"
)

// GridInput describes the tick grid and plot-area border shared by every
// chart family. Ticks are data values; scales and offsets are the same
// ones handed to the series builders.
type GridInput struct {
	XTicks []float32
	YTicks []float32

	ScaleX transform.Scale
	ScaleY transform.Scale

	OffsetX float32
	OffsetY float32

	// PlotWidth and PlotHeight are the inner plot-area dimensions in
	// device pixels.
	PlotWidth  float32
	PlotHeight float32

	// LineWidth is the grid line width in device pixels (typically the
	// DPR, i.e. one logical pixel).
	LineWidth float32

	Color chart.RGBA

	// Border adds four quads outlining the plot area.
	Border bool
}

// BuildGrid appends one quad per tick line plus the optional border.
// Grid geometry is independent of series data, so backends keep it in a
// persistent buffer slot and rebuild only when ticks or size change.
func BuildGrid(dst *Geometry, in GridInput) {
	dst.Topology = TriangleList

	lw := in.LineWidth
	if lw <= 0 {
		lw = 1
	}
	h := lw / 2

	x0, y0 := in.OffsetX, in.OffsetY
	x1, y1 := in.OffsetX+in.PlotWidth, in.OffsetY+in.PlotHeight

	for _, t := range in.XTicks {
		x := in.OffsetX + in.ScaleX(t)
		dst.appendRect(x-h, y0, x+h, y1, in.Color)
	}
	for _, t := range in.YTicks {
		y := in.OffsetY + in.ScaleY(t)
		dst.appendRect(x0, y-h, x1, y+h, in.Color)
	}

	if in.Border {
		dst.appendRect(x0-h, y0-h, x1+h, y0+h, in.Color) // top
		dst.appendRect(x0-h, y1-h, x1+h, y1+h, in.Color) // bottom
		dst.appendRect(x0-h, y0-h, x0+h, y1+h, in.Color) // left
		dst.appendRect(x1-h, y0-h, x1+h, y1+h, in.Color) // right
	}
}
