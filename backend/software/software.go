// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software implements the CPU fallback rendering tier.
//
// It rasterizes the same builder-produced triangle geometry as the GPU
// tier, directly into a surface.ImageSurface, using golang.org/x/image/vector
// for antialiased coverage. Rendering is synchronous: Render returns after
// the pixels are written.
//
// Import for side effects to register the tier:
//
//	import _ "github.com/gogpu/chart/backend/software"
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/geometry"
	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/transform"
)

// Name is the registered backend identifier.
const Name = "software"

func init() {
	chart.RegisterBackend(Name, chart.PrioritySoftware, func(kind chart.Kind) chart.Renderer {
		return New(kind)
	})
}

var _ chart.CapableRenderer = (*Renderer)(nil)

type state uint8

const (
	stateUninitialized state = iota
	stateReady
	stateDestroyed
)

// Renderer draws charts on the CPU. Instances are single-use: one Init,
// any number of Render calls, one Destroy.
type Renderer struct {
	kind    chart.Kind
	builder geometry.Builder

	mu     sync.Mutex
	state  state
	target *surface.ImageSurface

	ras   vector.Rasterizer
	slots scratch
	stack *geometry.StackAccumulator
}

// New creates an uninitialized software renderer for the given chart kind.
func New(kind chart.Kind) *Renderer {
	return &Renderer{
		kind:    kind,
		builder: geometry.NewBuilder(kind),
		stack:   geometry.NewStackAccumulator(),
	}
}

// Name returns the backend identifier.
func (r *Renderer) Name() string { return Name }

// Capabilities reports the tier's properties.
func (r *Renderer) Capabilities() chart.Capabilities {
	return chart.Capabilities{IsGPU: false, Async: false}
}

// Init binds the renderer to an image surface. It fails only when the
// surface exposes no CPU pixels; as the last tier it has nothing else to
// probe for.
func (r *Renderer) Init(s surface.Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateDestroyed:
		return chart.ErrDestroyed
	case stateReady:
		return fmt.Errorf("software: renderer already initialized")
	}

	img, ok := s.(*surface.ImageSurface)
	if !ok {
		return fmt.Errorf("%w: software tier needs CPU pixel access", chart.ErrUnsupportedSurface)
	}

	r.target = img
	r.state = stateReady
	return nil
}

// Render draws one frame synchronously. The frame is complete when Render
// returns.
func (r *Renderer) Render(props *chart.RenderProps) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateReady {
		chart.Logger().Debug("software: render before ready, frame dropped")
		return nil
	}

	dst := r.target.RGBA()
	bounds := dst.Bounds()

	fillBackground(dst, props.Background)

	xd := transform.Sanitize([2]float32{props.XDomain.Min(), props.XDomain.Max()})
	yd := transform.Sanitize([2]float32{props.YDomain.Min(), props.YDomain.Max()})
	sx := transform.NewScale(xd, props.InnerWidth())
	sy := transform.NewScaleFlipped(yd, props.InnerHeight())

	if props.ShowGrid {
		g := r.slots.grid()
		g.Reset()
		geometry.BuildGrid(g, geometry.GridInput{
			XTicks:     props.XTicks,
			YTicks:     props.YTicks,
			ScaleX:     sx,
			ScaleY:     sy,
			OffsetX:    props.Margin.Left,
			OffsetY:    props.Margin.Top,
			PlotWidth:  props.InnerWidth(),
			PlotHeight: props.InnerHeight(),
			LineWidth:  props.DevicePixelRatio,
			Color:      gridColor,
			Border:     true,
		})
		r.fill(dst, bounds, g)
	}

	r.stack.Reset()
	for i, s := range props.Series {
		g := r.slots.slot(i)
		g.Reset()
		r.builder.Build(g, geometry.Input{
			Series:      s,
			SeriesIndex: i,
			SeriesCount: len(props.Series),
			ScaleX:      sx,
			ScaleY:      sy,
			OffsetX:     props.Margin.Left,
			OffsetY:     props.Margin.Top,
			Stacked:     props.Stacked,
			Stack:       r.stack,
			Horizontal:  props.Horizontal,
			BarWidth:    props.BarWidth,
		})
		if props.Stacked {
			r.stack.Accumulate(s.Points)
		}
		r.fill(dst, bounds, g)
	}

	r.slots.trim(len(props.Series))
	return nil
}

// Destroy releases the scratch slots. Idempotent.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == stateDestroyed {
		return
	}
	r.slots.release()
	r.target = nil
	r.state = stateDestroyed
}

// gridColor is the fixed grid line color of the CPU tier, matching the
// GPU tier's default.
var gridColor = chart.RGBA{0.5, 0.5, 0.5, 0.35}

// fill rasterizes one geometry into dst. Builders emit a constant color
// per geometry, so coverage is accumulated for all primitives in a single
// pass and drawn through one uniform source.
func (r *Renderer) fill(dst *image.RGBA, bounds image.Rectangle, g *geometry.Geometry) {
	if g.IsEmpty() {
		return
	}

	r.ras.Reset(bounds.Dx(), bounds.Dy())
	r.ras.DrawOp = draw.Over

	pos := g.Positions
	switch g.Topology {
	case geometry.LineList:
		// Hairline segments become thin quads so a single fill pass
		// covers both topologies.
		for i := 0; i+3 < len(pos); i += 4 {
			addHairline(&r.ras, pos[i], pos[i+1], pos[i+2], pos[i+3])
		}
	default:
		for i := 0; i+5 < len(pos); i += 6 {
			r.ras.MoveTo(pos[i], pos[i+1])
			r.ras.LineTo(pos[i+2], pos[i+3])
			r.ras.LineTo(pos[i+4], pos[i+5])
			r.ras.ClosePath()
		}
	}

	r.ras.Draw(dst, bounds, image.NewUniform(toNRGBA(g.Colors)), image.Point{})
}

// addHairline appends a one pixel wide quad along the segment.
func addHairline(ras *vector.Rasterizer, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	length := math32.Hypot(dx, dy)
	if length == 0 {
		return
	}
	inv := 0.5 / length
	nx, ny := -dy*inv, dx*inv
	ras.MoveTo(x0+nx, y0+ny)
	ras.LineTo(x1+nx, y1+ny)
	ras.LineTo(x1-nx, y1-ny)
	ras.LineTo(x0-nx, y0-ny)
	ras.ClosePath()
}

// toNRGBA converts the geometry's leading vertex color to straight-alpha
// 8-bit.
func toNRGBA(colors []float32) color.NRGBA {
	if len(colors) < 4 {
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{
		R: u8(colors[0]),
		G: u8(colors[1]),
		B: u8(colors[2]),
		A: u8(colors[3]),
	}
}

func u8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// fillBackground fills the whole target with the background color. A zero
// value clears to transparent.
func fillBackground(dst *image.RGBA, bg chart.RGBA) {
	c := color.NRGBA{R: u8(bg[0]), G: u8(bg[1]), B: u8(bg[2]), A: u8(bg[3])}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
