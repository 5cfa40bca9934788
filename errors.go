// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import "errors"

// Engine error taxonomy. Backend packages wrap these sentinels with
// fmt.Errorf("...: %w", ...) so callers can classify failures with
// errors.Is regardless of which tier produced them.
var (
	// ErrBackendUnavailable is returned when a graphics backend cannot be
	// obtained. During negotiation it triggers fallback to the next tier;
	// once every tier has failed it is surfaced to the caller.
	ErrBackendUnavailable = errors.New("chart: backend unavailable")

	// ErrShaderCompile is returned when shader source fails to validate or
	// compile. Fatal for the attempting backend; triggers fallback.
	ErrShaderCompile = errors.New("chart: shader compilation failed")

	// ErrResourceExhausted is returned when a GPU buffer allocation fails.
	// Fatal for the current frame only: the frame is dropped and logged,
	// rendering continues on the next trigger.
	ErrResourceExhausted = errors.New("chart: gpu resource allocation failed")

	// ErrDeviceLost is returned when the graphics device was lost (driver
	// reset). The device cache is invalidated; the next render call
	// re-attempts acquisition.
	ErrDeviceLost = errors.New("chart: gpu device lost")

	// ErrDegenerateDomain reports a domain with max <= min. Scale
	// construction clamps such domains instead of failing, so this is
	// only returned by explicit validation entry points.
	ErrDegenerateDomain = errors.New("chart: degenerate axis domain")

	// ErrUnsupportedSurface is returned when a backend cannot draw to the
	// supplied surface type (e.g. the software tier given a GPU-only
	// surface).
	ErrUnsupportedSurface = errors.New("chart: unsupported surface type")

	// ErrDestroyed is returned when Render is called on a destroyed chart.
	ErrDestroyed = errors.New("chart: chart destroyed")
)
