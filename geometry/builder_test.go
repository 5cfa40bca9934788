// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/transform"
)

// ident is the identity scale, convenient for checking pixel output
// directly against data values.
func ident(v float32) float32 { return v }

func finitePositions(t *testing.T, g *Geometry) {
	t.Helper()
	for i, v := range g.Positions {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("Positions[%d] = %v, want finite", i, v)
		}
	}
}

func TestLineVertexCount(t *testing.T) {
	tests := []struct {
		name   string
		points []chart.Point
		want   int
	}{
		{"empty", nil, 0},
		{"single point", []chart.Point{{X: 1, Y: 1}}, 0},
		{"two points", []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 6},
		{"five points", []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 3}, {X: 4, Y: 0}}, 24},
		{"coincident pair", []chart.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Geometry
			lineBuilder{}.Build(&g, Input{
				Series: chart.Series{Points: tt.points, StrokeWidth: 2},
				ScaleX: ident,
				ScaleY: ident,
			})
			if got := g.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
			finitePositions(t, &g)
		})
	}
}

func TestLineSegmentExpansion(t *testing.T) {
	// A horizontal segment with stroke width 4 expands to y +/- 2.
	var g Geometry
	lineBuilder{}.Build(&g, Input{
		Series: chart.Series{
			Points:      []chart.Point{{X: 0, Y: 10}, {X: 8, Y: 10}},
			StrokeWidth: 4,
		},
		ScaleX: ident,
		ScaleY: ident,
	})
	if g.VertexCount() != 6 {
		t.Fatalf("VertexCount() = %d, want 6", g.VertexCount())
	}
	minY, maxY := g.Positions[1], g.Positions[1]
	for i := 3; i < len(g.Positions); i += 2 {
		y := g.Positions[i]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minY != 8 || maxY != 12 {
		t.Errorf("segment y span = [%v, %v], want [8, 12]", minY, maxY)
	}
}

func TestLineDefaultStrokeWidth(t *testing.T) {
	// Zero stroke width falls back to a hairline, never a zero-area quad.
	var g Geometry
	lineBuilder{}.Build(&g, Input{
		Series: chart.Series{Points: []chart.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}},
		ScaleX: ident,
		ScaleY: ident,
	})
	if g.Positions[1] == g.Positions[5] {
		t.Error("zero stroke width produced a degenerate quad")
	}
}

func TestAreaVertexCount(t *testing.T) {
	var g Geometry
	areaBuilder{}.Build(&g, Input{
		Series: chart.Series{
			Points: []chart.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}},
			Color:  chart.RGBA{1, 0, 0, 1},
		},
		ScaleX: ident,
		ScaleY: ident,
	})
	if got, want := g.VertexCount(), 12; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
}

func TestAreaFillOpacity(t *testing.T) {
	tests := []struct {
		name      string
		opacity   float32
		wantAlpha float32
	}{
		{"unset keeps series alpha", 0, 0.8},
		{"half", 0.5, 0.4},
		{"full", 1, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Geometry
			areaBuilder{}.Build(&g, Input{
				Series: chart.Series{
					Points:      []chart.Point{{X: 0, Y: 1}, {X: 1, Y: 1}},
					Color:       chart.RGBA{1, 0, 0, 0.8},
					FillOpacity: tt.opacity,
				},
				ScaleX: ident,
				ScaleY: ident,
			})
			if got := g.Colors[3]; got != tt.wantAlpha {
				t.Errorf("alpha = %v, want %v", got, tt.wantAlpha)
			}
		})
	}
}

func TestAreaCustomBaseline(t *testing.T) {
	base := float32(5)
	var g Geometry
	areaBuilder{}.Build(&g, Input{
		Series: chart.Series{
			Points:   []chart.Point{{X: 0, Y: 8}, {X: 1, Y: 8}},
			Baseline: &base,
		},
		ScaleX: ident,
		ScaleY: ident,
	})
	// Quad edges: top at y=8, bottom at the explicit baseline y=5.
	ys := map[float32]bool{}
	for i := 1; i < len(g.Positions); i += 2 {
		ys[g.Positions[i]] = true
	}
	if !ys[8] || !ys[5] {
		t.Errorf("quad y values = %v, want edges at 8 and 5", ys)
	}
}

func TestAreaStacked(t *testing.T) {
	// Two series on a shared x grid. The second series' band must sit on
	// top of the first: baseline at the first series' values, top shifted
	// by the same amount. Identity scales keep data and pixel space equal.
	a := chart.Series{Points: []chart.Point{{X: 0, Y: 1}, {X: 1, Y: 2}}}
	b := chart.Series{Points: []chart.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}}

	stack := NewStackAccumulator()

	var ga Geometry
	areaBuilder{}.Build(&ga, Input{
		Series: a, ScaleX: ident, ScaleY: ident,
		Stacked: true, Stack: stack,
	})
	stack.Accumulate(a.Points)

	var gb Geometry
	areaBuilder{}.Build(&gb, Input{
		Series: b, ScaleX: ident, ScaleY: ident,
		Stacked: true, Stack: stack,
	})
	stack.Accumulate(b.Points)

	// Series A starts at the zero baseline.
	if got := ga.Positions[1]; got != 1 {
		t.Errorf("series A top at x=0: got %v, want 1", got)
	}
	// Quad vertex order is top0, top1, base0 over the first three vertices.
	if got := gb.Positions[1]; got != 2 {
		t.Errorf("series B top at x=0: got %v, want 2 (1 value + 1 base)", got)
	}
	if got := gb.Positions[3]; got != 3 {
		t.Errorf("series B top at x=1: got %v, want 3 (1 value + 2 base)", got)
	}
	if got := gb.Positions[5]; got != 1 {
		t.Errorf("series B baseline at x=0: got %v, want 1", got)
	}
}

func TestStackAccumulatorReset(t *testing.T) {
	stack := NewStackAccumulator()
	stack.Accumulate([]chart.Point{{X: 0, Y: 5}})
	if got := stack.BaseFor(0); got != 5 {
		t.Fatalf("BaseFor(0) = %v, want 5", got)
	}
	stack.Reset()
	if got := stack.BaseFor(0); got != 0 {
		t.Errorf("BaseFor(0) after Reset = %v, want 0", got)
	}
}

func TestBarGrouping(t *testing.T) {
	// Two series share an 8px category slot: each bar is 4px wide, series
	// 0 on the left half, series 1 on the right.
	pts := []chart.Point{{X: 10, Y: 5}}
	build := func(index int) *Geometry {
		var g Geometry
		barBuilder{}.Build(&g, Input{
			Series:      chart.Series{Points: pts},
			SeriesIndex: index,
			SeriesCount: 2,
			ScaleX:      ident,
			ScaleY:      ident,
			BarWidth:    8,
		})
		return &g
	}

	g0 := build(0)
	g1 := build(1)
	if got, want := g0.VertexCount(), 6; got != want {
		t.Fatalf("VertexCount() = %d, want %d", got, want)
	}
	// appendRect vertex order: (x0,y0) (x1,y0) (x0,y1) ...
	if x0, x1 := g0.Positions[0], g0.Positions[2]; x0 != 6 || x1 != 10 {
		t.Errorf("series 0 bar x span = [%v, %v], want [6, 10]", x0, x1)
	}
	if x0, x1 := g1.Positions[0], g1.Positions[2]; x0 != 10 || x1 != 14 {
		t.Errorf("series 1 bar x span = [%v, %v], want [10, 14]", x0, x1)
	}
}

func TestBarNegativeValue(t *testing.T) {
	// Bars below the baseline come out with normalized corners, never an
	// inverted rectangle.
	var g Geometry
	barBuilder{}.Build(&g, Input{
		Series:   chart.Series{Points: []chart.Point{{X: 0, Y: -3}}},
		ScaleX:   ident,
		ScaleY:   ident,
		BarWidth: 4,
	})
	y0, y1 := g.Positions[1], g.Positions[5]
	if y0 > y1 {
		t.Errorf("bar rect inverted: y0=%v > y1=%v", y0, y1)
	}
	if y0 != -3 || y1 != 0 {
		t.Errorf("bar y span = [%v, %v], want [-3, 0]", y0, y1)
	}
}

func TestBarHorizontal(t *testing.T) {
	// Horizontal bars grow along x; the category position maps through
	// the y scale.
	var g Geometry
	barBuilder{}.Build(&g, Input{
		Series:     chart.Series{Points: []chart.Point{{X: 2, Y: 7}}},
		ScaleX:     ident,
		ScaleY:     ident,
		Horizontal: true,
		BarWidth:   4,
	})
	if x0, x1 := g.Positions[0], g.Positions[2]; x0 != 0 || x1 != 7 {
		t.Errorf("bar x span = [%v, %v], want [0, 7]", x0, x1)
	}
	if y0, y1 := g.Positions[1], g.Positions[5]; y0 != 0 || y1 != 4 {
		t.Errorf("bar y span = [%v, %v], want [0, 4]", y0, y1)
	}
}

func TestDefaultBarWidth(t *testing.T) {
	tests := []struct {
		name   string
		points []chart.Point
		want   float32
	}{
		{"two categories 10 apart", []chart.Point{{X: 0, Y: 1}, {X: 10, Y: 1}}, 8},
		{"descending categories", []chart.Point{{X: 10, Y: 1}, {X: 0, Y: 1}}, 8},
		{"single category", []chart.Point{{X: 0, Y: 1}}, 16},
		{"duplicate categories", []chart.Point{{X: 3, Y: 1}, {X: 3, Y: 2}}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultBarWidth(tt.points, Input{ScaleX: ident})
			if got != tt.want {
				t.Errorf("defaultBarWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewBuilderKinds(t *testing.T) {
	tests := []struct {
		kind chart.Kind
		want Builder
	}{
		{chart.KindLine, lineBuilder{}},
		{chart.KindArea, areaBuilder{}},
		{chart.KindBar, barBuilder{}},
	}
	for _, tt := range tests {
		if got := NewBuilder(tt.kind); got != tt.want {
			t.Errorf("NewBuilder(%v) = %T, want %T", tt.kind, got, tt.want)
		}
	}
}

func TestBuildersFiniteOnDegenerateDomain(t *testing.T) {
	// A flat domain sanitizes to a one-unit span, so the resulting scales
	// must never feed NaN or Inf into the builders.
	dom := transform.Sanitize([2]float32{5, 5})
	sx := transform.NewScale(dom, 100)
	sy := transform.NewScaleFlipped(dom, 100)
	series := chart.Series{
		Points:      []chart.Point{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}},
		StrokeWidth: 2,
	}
	for _, kind := range []chart.Kind{chart.KindLine, chart.KindArea, chart.KindBar} {
		t.Run(kind.String(), func(t *testing.T) {
			var g Geometry
			NewBuilder(kind).Build(&g, Input{
				Series: series,
				ScaleX: sx,
				ScaleY: sy,
			})
			finitePositions(t, &g)
		})
	}
}

func BenchmarkLineBuild(b *testing.B) {
	pts := make([]chart.Point, 1000)
	for i := range pts {
		pts[i] = chart.Point{X: float32(i), Y: float32(i % 50)}
	}
	in := Input{
		Series: chart.Series{Points: pts, StrokeWidth: 2},
		ScaleX: ident,
		ScaleY: ident,
	}
	var g Geometry
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		lineBuilder{}.Build(&g, in)
	}
}

func BenchmarkAreaBuildStacked(b *testing.B) {
	pts := make([]chart.Point, 1000)
	for i := range pts {
		pts[i] = chart.Point{X: float32(i), Y: 1}
	}
	stack := NewStackAccumulator()
	in := Input{
		Series:  chart.Series{Points: pts},
		ScaleX:  ident,
		ScaleY:  ident,
		Stacked: true,
		Stack:   stack,
	}
	var g Geometry
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		stack.Reset()
		areaBuilder{}.Build(&g, in)
		stack.Accumulate(pts)
	}
}
