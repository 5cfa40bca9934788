// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package transform implements the coordinate pipeline from data values to
// clip space.
//
// The pipeline has two halves. Scale closures map data-domain values into
// pixel offsets inside the plot area (already inset by margins and scaled
// by the device pixel ratio). The uniform [Block] then maps those pixel
// coordinates into WebGPU clip space on the GPU, flipping the Y axis
// exactly once: geometry builders already emit screen-down pixel Y, so the
// clip transform is the only place the sign changes.
//
// Everything in this package is pure and stateless.
package transform

import (
	"github.com/chewxy/math32"
)

// Scale maps a data-domain value to a pixel offset.
type Scale func(v float32) float32

// Sanitize clamps a degenerate domain (max <= min, or non-finite bounds)
// to a one-unit-wide domain centered on the midpoint. Scale factories call
// it unconditionally so division by zero can never reach geometry.
func Sanitize(d [2]float32) [2]float32 {
	lo, hi := d[0], d[1]
	if math32.IsNaN(lo) || math32.IsInf(lo, 0) {
		lo = 0
	}
	if math32.IsNaN(hi) || math32.IsInf(hi, 0) {
		hi = 0
	}
	if hi > lo {
		return [2]float32{lo, hi}
	}
	mid := (lo + hi) / 2
	return [2]float32{mid - 0.5, mid + 0.5}
}

// IsDegenerate reports whether the domain would be clamped by Sanitize.
func IsDegenerate(d [2]float32) bool {
	s := Sanitize(d)
	return s != d
}

// NewScale returns a linear scale from the domain onto [0, inner] pixels.
// NewScale(d, inner)(d[0]) == 0 and NewScale(d, inner)(d[1]) == inner
// exactly for non-degenerate domains.
func NewScale(d [2]float32, inner float32) Scale {
	d = Sanitize(d)
	min := d[0]
	span := d[1] - d[0]
	return func(v float32) float32 {
		return (v - min) / span * inner
	}
}

// NewScaleFlipped returns a linear scale with the pixel axis inverted,
// mapping data-up to screen-down: d[0] lands at inner, d[1] at 0.
// Used for the Y axis so that larger values are drawn higher.
func NewScaleFlipped(d [2]float32, inner float32) Scale {
	s := NewScale(d, inner)
	return func(v float32) float32 {
		return inner - s(v)
	}
}
