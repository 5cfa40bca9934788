// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geometry turns chart data into flat vertex and color arrays.
//
// Each builder is a pure function from data points plus scale closures to
// triangles (or line segments) in device-pixel space. Builders never read
// the device pixel ratio: every dimension they receive — margins, stroke
// widths, bar widths, tick positions — must already be DPR-scaled by the
// caller. Output coordinates are screen-down (Y grows toward the bottom);
// the single Y flip to clip space happens later in the transform uniform.
package geometry

import "github.com/gogpu/chart"

// Topology selects how the position array is interpreted by the backend.
type Topology uint8

const (
	// TriangleList draws every three vertices as one triangle.
	TriangleList Topology = iota

	// LineList draws every two vertices as one hairline segment.
	LineList
)

// Geometry is a flat vertex buffer: two position floats and four color
// floats per vertex. Instances are transient — built, uploaded, and
// released within a single frame — and are recycled through [Pool].
type Geometry struct {
	Positions []float32
	Colors    []float32
	Topology  Topology
}

// Reset truncates the arrays, retaining capacity for reuse.
func (g *Geometry) Reset() {
	g.Positions = g.Positions[:0]
	g.Colors = g.Colors[:0]
	g.Topology = TriangleList
}

// VertexCount returns the number of vertices currently stored.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 2
}

// IsEmpty reports whether the geometry holds no vertices.
func (g *Geometry) IsEmpty() bool {
	return len(g.Positions) == 0
}

// appendVertex adds one vertex with its color.
func (g *Geometry) appendVertex(x, y float32, c chart.RGBA) {
	g.Positions = append(g.Positions, x, y)
	g.Colors = append(g.Colors, c[0], c[1], c[2], c[3])
}

// appendQuad adds the two triangles covering the quad (a, b, c, d), where
// (a,b) and (c,d) are opposite edges. Vertex order is a,b,c c,b,d so both
// triangles wind the same way.
func (g *Geometry) appendQuad(ax, ay, bx, by, cx, cy, dx, dy float32, col chart.RGBA) {
	g.appendVertex(ax, ay, col)
	g.appendVertex(bx, by, col)
	g.appendVertex(cx, cy, col)
	g.appendVertex(cx, cy, col)
	g.appendVertex(bx, by, col)
	g.appendVertex(dx, dy, col)
}

// appendRect adds an axis-aligned rectangle. Coordinates are normalized so
// the rectangle is never inverted regardless of argument order.
func (g *Geometry) appendRect(x0, y0, x1, y1 float32, col chart.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	g.appendQuad(x0, y0, x1, y0, x0, y1, x1, y1, col)
}
