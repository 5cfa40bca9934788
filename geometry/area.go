// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

// areaBuilder emits one quad per adjacent point pair, bounded above by the
// two data values and below by the baseline.
//
// In stacked mode the baseline at each x is the cumulative top of the
// previously built series at that exact x (see StackAccumulator); the
// series' own values are shifted up by the same amount so stacked bands
// tile without overlap.
type areaBuilder struct{}

func (areaBuilder) Build(dst *Geometry, in Input) {
	dst.Topology = TriangleList
	pts := in.Series.Points
	if len(pts) < 2 {
		return
	}

	col := in.Series.Color
	if in.Series.FillOpacity > 0 {
		col = col.WithAlpha(col[3] * in.Series.FillOpacity)
	}

	topY := func(p float32, base float32) float32 {
		if in.Stacked {
			return p + base
		}
		return p
	}

	b0 := in.baseline(pts[0].X)
	x0 := in.OffsetX + in.ScaleX(pts[0].X)
	v0 := in.OffsetY + in.ScaleY(topY(pts[0].Y, b0))
	base0 := in.OffsetY + in.ScaleY(b0)
	for i := 1; i < len(pts); i++ {
		b1 := in.baseline(pts[i].X)
		x1 := in.OffsetX + in.ScaleX(pts[i].X)
		v1 := in.OffsetY + in.ScaleY(topY(pts[i].Y, b1))
		base1 := in.OffsetY + in.ScaleY(b1)

		dst.appendQuad(
			x0, v0,
			x1, v1,
			x0, base0,
			x1, base1,
			col,
		)

		x0, v0, base0 = x1, v1, base1
	}
}
