// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import (
	"testing"

	"github.com/gogpu/chart"
)

func TestBuildGridVertexCount(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float32
		border bool
		want   int
	}{
		{"no ticks no border", nil, nil, false, 0},
		{"border only", nil, nil, true, 24},
		{"ticks only", []float32{0, 50, 100}, []float32{0, 100}, false, 30},
		{"ticks and border", []float32{0, 50}, []float32{25}, true, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Geometry
			BuildGrid(&g, GridInput{
				XTicks:     tt.xs,
				YTicks:     tt.ys,
				ScaleX:     ident,
				ScaleY:     ident,
				PlotWidth:  100,
				PlotHeight: 100,
				Border:     tt.border,
			})
			if got := g.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildGridTickPlacement(t *testing.T) {
	var g Geometry
	BuildGrid(&g, GridInput{
		XTicks:     []float32{40},
		ScaleX:     ident,
		ScaleY:     ident,
		OffsetX:    10,
		OffsetY:    20,
		PlotWidth:  100,
		PlotHeight: 80,
		LineWidth:  2,
	})
	// One vertical quad centered on offset+tick, spanning the plot height.
	if x0, x1 := g.Positions[0], g.Positions[2]; x0 != 49 || x1 != 51 {
		t.Errorf("tick x span = [%v, %v], want [49, 51]", x0, x1)
	}
	if y0, y1 := g.Positions[1], g.Positions[5]; y0 != 20 || y1 != 100 {
		t.Errorf("tick y span = [%v, %v], want [20, 100]", y0, y1)
	}
}

func TestBuildGridColor(t *testing.T) {
	col := chart.RGBA{0.5, 0.5, 0.5, 0.3}
	var g Geometry
	BuildGrid(&g, GridInput{
		YTicks:     []float32{10},
		ScaleX:     ident,
		ScaleY:     ident,
		PlotWidth:  50,
		PlotHeight: 50,
		Color:      col,
	})
	for i := 0; i < 4; i++ {
		if g.Colors[i] != col[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, g.Colors[i], col[i])
		}
	}
}

func TestPoolReuse(t *testing.T) {
	p := NewPool()
	g := p.Get()
	g.Positions = append(g.Positions, 1, 2, 3, 4)
	g.Colors = append(g.Colors, 1, 1, 1, 1)
	g.Topology = LineList
	p.Put(g)

	g2 := p.Get()
	if !g2.IsEmpty() {
		t.Error("pooled geometry not reset")
	}
	if g2.Topology != TriangleList {
		t.Errorf("Topology = %v, want TriangleList", g2.Topology)
	}
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool()
	p.Put(nil) // must not panic
	if g := p.Get(); g == nil {
		t.Fatal("Get() = nil")
	}
}

func TestPoolWarmup(t *testing.T) {
	p := NewPool()
	p.Warmup(4, 256)
	g := p.Get()
	defer p.Put(g)
	if cap(g.Positions) < 512 {
		t.Errorf("cap(Positions) = %d, want >= 512", cap(g.Positions))
	}
	if cap(g.Colors) < 1024 {
		t.Errorf("cap(Colors) = %d, want >= 1024", cap(g.Colors))
	}
}
