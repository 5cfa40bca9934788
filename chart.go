// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/chart/surface"
)

// Options configures a Chart.
type Options struct {
	// Backend forces a specific backend tier by name, skipping
	// negotiation. Empty selects the best available tier.
	Backend string

	// OnReady is invoked once after the backend has been negotiated and
	// initialized, with the selected backend name.
	OnReady func(backend string)

	// OnError is invoked when rendering for the surface becomes
	// impossible: every backend tier failed to initialize. Per-frame
	// errors are logged and dropped, not reported here.
	OnError func(err error)
}

// Chart is the engine facade: it owns backend negotiation, the active
// renderer handle and frame scheduling for one surface.
//
// At most one renderer handle is active per surface at a time. Chart
// methods are safe for concurrent use; overlapping Render calls are
// resolved by dropping, not queueing (see Render).
type Chart struct {
	kind Kind
	opts Options

	// inFlight is the single in-flight frame guard. A Render call that
	// fails the CAS is dropped entirely.
	inFlight atomic.Bool

	// visible gates rendering; it is an external signal.
	visible atomic.Bool

	mu        sync.Mutex // guards renderer, surface, destroyed, initFailed
	renderer  Renderer
	surface   surface.Surface
	destroyed bool
	// initFailed latches negotiation failure so every subsequent Render
	// does not retry a permanently missing backend stack.
	initFailed bool
}

// New creates a chart engine for the given kind. No GPU work happens
// until the first Render call supplies a surface.
func New(kind Kind, opts Options) *Chart {
	c := &Chart{kind: kind, opts: opts}
	c.visible.Store(true)
	return c
}

// SetVisible records the external visibility signal. Frames scheduled
// while invisible are skipped without touching the backend.
func (c *Chart) SetVisible(v bool) {
	c.visible.Store(v)
}

// Render draws one frame with the supplied per-frame inputs.
//
// Scheduling rules, in order:
//   - a call arriving while another frame is in flight is dropped
//     entirely (not queued, not retried); the next data change will
//     trigger a fresh render
//   - invisible surfaces skip rendering
//   - the first call negotiates a backend for props.Surface; if every
//     tier fails, the error is surfaced via Options.OnError and returned
//
// Per-frame errors (allocation failure, transient validation) are logged
// and the frame is dropped; the engine remains usable. A lost device
// drops the frame and releases the renderer handle, so the next frame
// negotiates a fresh backend against the re-acquired device.
func (c *Chart) Render(props *RenderProps) error {
	if props == nil || props.Surface == nil {
		return fmt.Errorf("chart: nil props or surface")
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		Logger().Debug("chart: frame dropped, render in flight")
		return nil
	}
	defer c.inFlight.Store(false)

	if !c.visible.Load() {
		return nil
	}

	r, err := c.acquireRenderer(props)
	if err != nil {
		return err
	}
	if r == nil {
		// Destroyed, or negotiation already failed permanently.
		return nil
	}

	if err := r.Render(props); err != nil {
		if errors.Is(err, ErrDeviceLost) {
			Logger().Warn("chart: device lost, releasing renderer", "backend", r.Name())
			c.releaseRenderer(r)
		} else {
			Logger().Warn("chart: frame dropped", "backend", r.Name(), "err", err)
		}
	}
	return nil
}

// releaseRenderer drops the active renderer handle after a device loss.
// Only the handle that failed is released; a handle negotiated by a
// later frame stays in place.
func (c *Chart) releaseRenderer(r Renderer) {
	c.mu.Lock()
	if c.renderer == r {
		c.renderer = nil
	}
	c.mu.Unlock()
	r.Destroy()
}

// acquireRenderer returns the active renderer, negotiating one on first
// use. Returns (nil, nil) when the chart is destroyed or negotiation has
// already failed permanently.
func (c *Chart) acquireRenderer(props *RenderProps) (Renderer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return nil, ErrDestroyed
	}
	c.surface = props.Surface
	if c.renderer != nil {
		return c.renderer, nil
	}
	if c.initFailed {
		return nil, nil
	}

	r, err := negotiate(c.kind, props.Surface, c.opts.Backend)
	if err != nil {
		c.initFailed = true
		if c.opts.OnError != nil {
			c.opts.OnError(err)
		}
		return nil, err
	}
	c.renderer = r
	if c.opts.OnReady != nil {
		c.opts.OnReady(r.Name())
	}
	return r, nil
}

// Resize forwards a new pixel size to the render surface. The active
// backend picks the size up on the next frame: the GPU tier reconfigures
// its swapchain, the software tier reads the target dimensions directly.
//
// Calling Resize before the first Render is a no-op; the first frame
// adopts whatever size the surface already has.
func (c *Chart) Resize(width, height int) error {
	c.mu.Lock()
	s := c.surface
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed {
		return ErrDestroyed
	}
	if s == nil {
		return nil
	}
	rs, ok := s.(surface.Resizable)
	if !ok {
		return fmt.Errorf("chart: surface %dx%d is not resizable", s.Width(), s.Height())
	}
	return rs.Resize(width, height)
}

// Backend returns the active backend name, or "" before the first
// successful Render.
func (c *Chart) Backend() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderer == nil {
		return ""
	}
	return c.renderer.Name()
}

// Destroy releases the renderer handle and every GPU resource it owns.
// Destroy is idempotent. The chart must not be rendered after Destroy.
func (c *Chart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	c.destroyed = true
	c.surface = nil
	if c.renderer != nil {
		c.renderer.Destroy()
		c.renderer = nil
	}
}
