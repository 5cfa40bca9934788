// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import (
	"github.com/chewxy/math32"
)

// lineBuilder emits one quad (two triangles, six vertices) per adjacent
// point pair, expanded by half the stroke width along the segment normal.
//
// Both triangles of a segment use the same normal magnitude, so segment
// joins are gap-free but not mitered: sharp turns show small bevel
// artifacts, which is accepted.
type lineBuilder struct{}

func (lineBuilder) Build(dst *Geometry, in Input) {
	dst.Topology = TriangleList
	pts := in.Series.Points
	if len(pts) < 2 {
		return
	}

	hw := in.Series.StrokeWidth / 2
	if hw <= 0 {
		hw = 0.5
	}
	col := in.Series.Color

	x0 := in.OffsetX + in.ScaleX(pts[0].X)
	y0 := in.OffsetY + in.ScaleY(pts[0].Y)
	for i := 1; i < len(pts); i++ {
		x1 := in.OffsetX + in.ScaleX(pts[i].X)
		y1 := in.OffsetY + in.ScaleY(pts[i].Y)

		dx := x1 - x0
		dy := y1 - y0
		length := math32.Hypot(dx, dy)
		if length == 0 {
			// Coincident points contribute no segment; still emit a
			// degenerate quad so the vertex count stays 6*(n-1).
			dx, dy, length = 1, 0, 1
		}

		// Unit normal scaled to half the stroke width.
		nx := -dy / length * hw
		ny := dx / length * hw

		dst.appendQuad(
			x0+nx, y0+ny,
			x1+nx, y1+ny,
			x0-nx, y0-ny,
			x1-nx, y1-ny,
			col,
		)

		x0, y0 = x1, y1
	}
}
