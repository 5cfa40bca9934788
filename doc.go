// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package chart is a GPU-accelerated 2D chart rendering engine.
//
// Given numeric series, axis domains and a render surface, chart produces
// line, filled-area, bar and grid primitives at interactive frame rates.
// Rendering is performed by one of two backend tiers:
//
//   - webgpu: the modern, compute-capable tier built on WebGPU
//     (github.com/cogentcore/webgpu). Commands are submitted through an
//     encoder/pass pipeline; submission is asynchronous.
//   - software: the universally available CPU raster tier. Commands are
//     executed synchronously into an *image.RGBA surface.
//
// Backends register themselves on import and are negotiated in priority
// order, falling back one tier when initialization fails:
//
//	import (
//	    "github.com/gogpu/chart"
//	    _ "github.com/gogpu/chart/backend/software"
//	    _ "github.com/gogpu/chart/backend/webgpu"
//	)
//
//	c := chart.New(chart.KindLine, chart.Options{})
//	defer c.Destroy()
//	err := c.Render(props)
//
// The engine consumes a small per-frame input bundle ([RenderProps]) and
// exposes only Render and Destroy; layout, styling, tooltips and axis text
// are the caller's concern. All pixel dimensions in RenderProps must already
// be scaled by the device pixel ratio.
package chart
