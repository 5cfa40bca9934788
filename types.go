// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"fmt"

	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/transform"
)

// Kind selects the chart family a renderer draws.
// The geometry strategy is fixed at construction time; grid and border
// primitives are shared by every kind.
type Kind uint8

const (
	// KindLine draws each series as a stroked polyline built from
	// normal-expanded triangle quads.
	KindLine Kind = iota

	// KindArea draws each series as a filled region between the data
	// values and a baseline, with optional stacking.
	KindArea

	// KindBar draws one rectangle per category, grouped side by side
	// when multiple series are present.
	KindBar
)

// String returns the kind identifier used in logs and labels.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArea:
		return "area"
	case KindBar:
		return "bar"
	}
	return "unknown"
}

// RGBA is a normalized straight-alpha color. Components are in [0, 1].
type RGBA [4]float32

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c[3] = a
	return c
}

// Point is a single data sample. X and Y are in the data domain,
// not in pixels.
type Point struct {
	X float32
	Y float32
}

// Series is one sequence of data points with its visual style.
// Series data is owned by the caller and read-only to the engine;
// it is never retained past the Render call that received it.
type Series struct {
	// ID identifies the series to the caller. The engine keys GPU buffer
	// slots by series position, not by ID; reordering series between
	// frames may reuse a slot for a different series for one frame.
	ID string

	// Points are the data samples, in caller order.
	Points []Point

	// Color is the stroke/fill color.
	Color RGBA

	// StrokeWidth is the line width in device pixels (already scaled by
	// the device pixel ratio). Ignored by bar charts.
	StrokeWidth float32

	// FillOpacity scales the fill alpha for area charts. Zero means
	// unset and leaves the color's own alpha in effect; line charts
	// ignore it.
	FillOpacity float32

	// Baseline overrides the fill/bar baseline for this series.
	// Nil means 0 (or the stacked cumulative value in stacked mode).
	Baseline *float32
}

// Domain is the [min, max] data range an axis maps onto the plot area.
// A degenerate domain (max <= min) is clamped to a one-unit range around
// the midpoint before any geometry is built.
type Domain [2]float32

// Min returns the lower bound.
func (d Domain) Min() float32 { return d[0] }

// Max returns the upper bound.
func (d Domain) Max() float32 { return d[1] }

// Validate reports ErrDegenerateDomain when the domain would be clamped
// before use. Rendering never fails on a degenerate domain; Validate is
// for callers that want to reject one up front instead.
func (d Domain) Validate() error {
	if transform.IsDegenerate([2]float32(d)) {
		return fmt.Errorf("%w: [%v, %v]", ErrDegenerateDomain, d[0], d[1])
	}
	return nil
}

// Margin is the plot-area inset in device pixels.
type Margin struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// RenderProps is the per-frame input bundle. It is constructed fresh for
// every Render call and never retained by the engine.
//
// All pixel quantities (Width, Height, Margin, tick positions are data
// values, stroke widths, BarWidth) must already be multiplied by the
// device pixel ratio; the engine never applies DPR itself.
type RenderProps struct {
	// Surface is the render target handle.
	Surface surface.Surface

	// Series is the data to draw, one slice entry per series.
	Series []Series

	// XDomain and YDomain are the axis data ranges.
	XDomain Domain
	YDomain Domain

	// XTicks and YTicks are tick positions in data coordinates,
	// used for grid lines.
	XTicks []float32
	YTicks []float32

	// Width and Height are the full canvas size in device pixels.
	Width  float32
	Height float32

	// Margin insets the plot area from the canvas edge.
	Margin Margin

	// DevicePixelRatio is carried for diagnostics only; every dimension
	// above is expected to be pre-scaled by it.
	DevicePixelRatio float32

	// ShowGrid draws tick grid lines and the plot-area border.
	ShowGrid bool

	// Stacked stacks area series on the cumulative value of the
	// previous series at the same x.
	Stacked bool

	// Horizontal flips bar orientation (bars grow along x).
	Horizontal bool

	// BarWidth is the category slot width in device pixels for bar
	// charts. Zero derives a width from the x tick spacing.
	BarWidth float32

	// Background is the clear color. Zero value clears to transparent.
	Background RGBA
}

// InnerWidth returns the plot-area width after margins.
func (p *RenderProps) InnerWidth() float32 {
	w := p.Width - p.Margin.Left - p.Margin.Right
	if w < 0 {
		return 0
	}
	return w
}

// InnerHeight returns the plot-area height after margins.
func (p *RenderProps) InnerHeight() float32 {
	h := p.Height - p.Margin.Top - p.Margin.Bottom
	if h < 0 {
		return 0
	}
	return h
}
