// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import "github.com/gogpu/chart"

// barBuilder emits one axis-aligned quad per category, from the baseline
// to the data value. With multiple series the category slot is split into
// seriesCount equal groups, offset by series index; min/max ordering is
// normalized in appendRect so rectangles are never inverted regardless of
// value sign.
type barBuilder struct{}

func (barBuilder) Build(dst *Geometry, in Input) {
	dst.Topology = TriangleList
	pts := in.Series.Points
	if len(pts) == 0 {
		return
	}

	barWidth := in.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth(pts, in)
	}

	count := in.SeriesCount
	if count < 1 {
		count = 1
	}
	effWidth := barWidth / float32(count)
	// Center the group on the category position.
	groupStart := -barWidth/2 + float32(in.SeriesIndex)*effWidth

	col := in.Series.Color

	for _, p := range pts {
		base := in.baseline(p.X)
		if in.Horizontal {
			// Category along y, value along x.
			cy := in.OffsetY + in.ScaleY(p.X)
			v0 := in.OffsetX + in.ScaleX(base)
			v1 := in.OffsetX + in.ScaleX(p.Y)
			dst.appendRect(v0, cy+groupStart, v1, cy+groupStart+effWidth, col)
			continue
		}
		cx := in.OffsetX + in.ScaleX(p.X)
		v0 := in.OffsetY + in.ScaleY(base)
		v1 := in.OffsetY + in.ScaleY(p.Y)
		dst.appendRect(cx+groupStart, v0, cx+groupStart+effWidth, v1, col)
	}
}

// defaultBarWidth derives a category width from the spacing of the first
// two categories, at 80% to leave a gutter. Single-category series get a
// fixed fallback.
func defaultBarWidth(pts []chart.Point, in Input) float32 {
	if len(pts) < 2 {
		return 16
	}
	d := in.ScaleX(pts[1].X) - in.ScaleX(pts[0].X)
	if d < 0 {
		d = -d
	}
	if d == 0 {
		return 16
	}
	return d * 0.8
}
