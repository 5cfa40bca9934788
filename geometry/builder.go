// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/transform"
)

// Input carries everything a builder needs for one series. All pixel
// quantities are in device pixels; scales map data values to offsets
// inside the plot area and OffsetX/OffsetY translate those into canvas
// coordinates.
type Input struct {
	// Series is the data and style for this series.
	Series chart.Series

	// SeriesIndex and SeriesCount position the series among its
	// siblings, used for bar grouping and buffer slot assignment.
	SeriesIndex int
	SeriesCount int

	// ScaleX maps data x to a pixel offset inside the plot area.
	// ScaleY is flipped: larger data values map to smaller pixel y.
	ScaleX transform.Scale
	ScaleY transform.Scale

	// OffsetX and OffsetY are the plot-area origin on the canvas
	// (margin left/top, DPR-scaled).
	OffsetX float32
	OffsetY float32

	// Stacked enables cumulative baselines for area charts. Stack must
	// be non-nil when Stacked is set and shared across the series of
	// one frame, in draw order.
	Stacked bool
	Stack   *StackAccumulator

	// Horizontal flips bar growth onto the x axis.
	Horizontal bool

	// BarWidth is the category slot width in device pixels.
	BarWidth float32
}

// Builder is the per-chart-family geometry strategy. Implementations are
// pure: no state is shared between Build calls, and dst is the only thing
// written.
type Builder interface {
	// Build appends the series' vertices to dst.
	Build(dst *Geometry, in Input)
}

// NewBuilder returns the geometry strategy for a chart kind.
func NewBuilder(kind chart.Kind) Builder {
	switch kind {
	case chart.KindArea:
		return areaBuilder{}
	case chart.KindBar:
		return barBuilder{}
	default:
		return lineBuilder{}
	}
}

// baseline returns the series' fill/bar baseline in data coordinates for
// the sample at x, consulting the stack accumulator in stacked mode.
func (in *Input) baseline(x float32) float32 {
	if in.Stacked && in.Stack != nil {
		return in.Stack.BaseFor(x)
	}
	if in.Series.Baseline != nil {
		return *in.Series.Baseline
	}
	return 0
}

// StackAccumulator tracks cumulative series tops for stacked area charts.
//
// Lookup is keyed by the exact float32 x value: series with near-duplicate
// x samples (differing only in low-order bits) will not stack onto each
// other. Callers that stack must align series on a shared x grid.
type StackAccumulator struct {
	tops map[float32]float32
}

// NewStackAccumulator creates an empty accumulator.
func NewStackAccumulator() *StackAccumulator {
	return &StackAccumulator{tops: make(map[float32]float32)}
}

// BaseFor returns the cumulative top at x from previously accumulated
// series, or 0 when no series has contributed at x.
func (a *StackAccumulator) BaseFor(x float32) float32 {
	return a.tops[x]
}

// Accumulate folds a series into the running tops. Call after building
// that series' geometry so its own baseline excluded it.
func (a *StackAccumulator) Accumulate(points []chart.Point) {
	for _, p := range points {
		a.tops[p.X] += p.Y
	}
}

// Reset clears all accumulated tops for the next frame.
func (a *StackAccumulator) Reset() {
	clear(a.tops)
}
