// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package webgpu implements the GPU rendering tier on cogentcore/webgpu.
//
// The tier shares one process-wide device across all chart handles (see
// AcquireDevice) and keeps per-handle swapchain, pipeline and vertex
// buffer state. Render completes when the frame's command buffer is
// submitted; presentation is asynchronous.
//
// Import for side effects to register the tier:
//
//	import _ "github.com/gogpu/chart/backend/webgpu"
package webgpu

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/geometry"
	"github.com/gogpu/chart/surface"
	"github.com/gogpu/chart/transform"
)

// Name is the registered backend identifier.
const Name = "webgpu"

func init() {
	chart.RegisterBackend(Name, chart.PriorityGPU, func(kind chart.Kind) chart.Renderer {
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

// Renderer draws charts through WebGPU. Instances are single-use: one
// Init, any number of Render calls, one Destroy. The underlying device is
// shared and survives Destroy; only per-handle resources are released.
type Renderer struct {
	kind    chart.Kind
	builder geometry.Builder

	mu    sync.Mutex
	state state

	dev    *DeviceInfo
	target *surface.GPUSurface

	surf      *wgpu.Surface
	format    wgpu.TextureFormat
	alphaMode wgpu.CompositeAlphaMode
	confW     int
	confH     int

	pipes     *pipelines
	uniform   *wgpu.Buffer
	bindGroup *wgpu.BindGroup
	pool      *BufferPool
	stack     *geometry.StackAccumulator
}

// New creates an uninitialized GPU renderer for the given chart kind.
func New(kind chart.Kind) *Renderer {
	return &Renderer{
		kind:    kind,
		builder: geometry.NewBuilder(kind),
		stack:   geometry.NewStackAccumulator(),
	}
}

// Name returns the backend identifier.
func (r *Renderer) Name() string { return Name }

// Capabilities reports the tier's properties. Valid after Init.
func (r *Renderer) Capabilities() chart.Capabilities {
	r.mu.Lock()
	defer r.mu.Unlock()
	caps := chart.Capabilities{IsGPU: true, Async: true}
	if r.dev != nil {
		caps.MaxTextureSize = int(r.dev.Limits.MaxTextureDimension2D)
	}
	return caps
}

// Init acquires the shared device, creates the swapchain surface from the
// target's platform descriptor and builds the pipelines and uniform
// resources. Failure leaves the instance destroyable but unusable.
func (r *Renderer) Init(s surface.Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateDestroyed:
		return chart.ErrDestroyed
	case stateReady:
		return fmt.Errorf("webgpu: renderer already initialized")
	}

	target, ok := s.(*surface.GPUSurface)
	if !ok {
		return fmt.Errorf("%w: webgpu tier needs a GPU surface", chart.ErrUnsupportedSurface)
	}

	dev, err := AcquireDevice()
	if err != nil {
		return err
	}

	surf := dev.Instance.CreateSurface(target.Descriptor())
	if surf == nil {
		return fmt.Errorf("%w: surface creation failed", chart.ErrBackendUnavailable)
	}

	caps := surf.GetCapabilities(dev.Adapter)
	if len(caps.Formats) == 0 {
		surf.Release()
		return fmt.Errorf("%w: surface reports no formats", chart.ErrBackendUnavailable)
	}
	r.format = caps.Formats[0]
	r.alphaMode = caps.AlphaModes[0]

	r.dev = dev
	r.target = target
	r.surf = surf
	r.configureSurface(target.Width(), target.Height())

	r.pipes, err = newPipelines(dev.Device, r.format)
	if err != nil {
		r.releaseLocked()
		return err
	}

	r.uniform, err = dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "chart uniforms",
		Size:  transform.ByteSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		r.releaseLocked()
		return fmt.Errorf("%w: uniform buffer: %v", chart.ErrResourceExhausted, err)
	}

	r.bindGroup, err = dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "chart uniforms",
		Layout: r.pipes.bindLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  r.uniform,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		r.releaseLocked()
		return fmt.Errorf("webgpu: bind group: %w", err)
	}

	r.pool = NewBufferPool(dev.Device, dev.Queue)
	r.state = stateReady
	return nil
}

func (r *Renderer) configureSurface(w, h int) {
	r.surf.Configure(r.dev.Adapter, r.dev.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.format,
		Width:       uint32(w),
		Height:      uint32(h),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   r.alphaMode,
	})
	r.confW, r.confH = w, h
}

// Render draws one frame. It returns once the command buffer is
// submitted. Device loss invalidates the shared cache and returns
// ErrDeviceLost; the handle must be re-created to recover.
func (r *Renderer) Render(props *chart.RenderProps) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateReady {
		chart.Logger().Debug("webgpu: render before ready, frame dropped")
		return nil
	}

	// The host records resizes on the surface handle; reconfigure the
	// swapchain when they diverge from the configured size.
	if w, h := r.target.Width(), r.target.Height(); w != r.confW || h != r.confH {
		r.configureSurface(w, h)
	}

	block := transform.NewBlock(props.Width, props.Height)
	if err := r.dev.Queue.WriteBuffer(r.uniform, 0, block.Bytes()); err != nil {
		return r.frameError(fmt.Errorf("webgpu: uniform upload: %w", err))
	}

	xd := transform.Sanitize([2]float32{props.XDomain.Min(), props.XDomain.Max()})
	yd := transform.Sanitize([2]float32{props.YDomain.Min(), props.YDomain.Max()})
	sx := transform.NewScale(xd, props.InnerWidth())
	sy := transform.NewScaleFlipped(yd, props.InnerHeight())

	// Grid first so series draw on top of it.
	var draws []frameDraw

	if props.ShowGrid {
		g := geometry.DefaultPool.Get()
		defer geometry.DefaultPool.Put(g)
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
		if !g.IsEmpty() {
			bufs, err := r.pool.UploadGrid(g)
			if err != nil {
				return r.frameError(err)
			}
			draws = append(draws, frameDraw{bufs, g.Topology == geometry.LineList})
		}
	}

	r.stack.Reset()
	for i, s := range props.Series {
		g := geometry.DefaultPool.Get()
		defer geometry.DefaultPool.Put(g)
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
		if g.IsEmpty() {
			continue
		}
		bufs, err := r.pool.Upload(i, g)
		if err != nil {
			return r.frameError(err)
		}
		draws = append(draws, frameDraw{bufs, g.Topology == geometry.LineList})
	}

	if err := r.submit(props.Background, draws); err != nil {
		return err
	}

	r.pool.Trim(len(props.Series))
	return nil
}

// frameDraw is one render-pass draw: a slot's buffers and its topology.
type frameDraw struct {
	buffers  *slotBuffers
	lineList bool
}

// submit encodes and submits one render pass over the prepared draws.
func (r *Renderer) submit(bg chart.RGBA, draws []frameDraw) error {
	texture, err := r.surf.GetCurrentTexture()
	if err != nil {
		return r.deviceLost(err)
	}
	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return r.deviceLost(err)
	}
	defer view.Release()

	encoder, err := r.dev.Device.CreateCommandEncoder(nil)
	if err != nil {
		return r.deviceLost(err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "chart frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(bg[0]),
				G: float64(bg[1]),
				B: float64(bg[2]),
				A: float64(bg[3]),
			},
		}},
	})

	for _, d := range draws {
		if d.buffers.vertices == 0 {
			continue
		}
		pass.SetPipeline(r.pipes.pipelineFor(d.lineList))
		pass.SetBindGroup(0, r.bindGroup, nil)
		pass.SetVertexBuffer(0, d.buffers.positions, 0, wgpu.WholeSize)
		pass.SetVertexBuffer(1, d.buffers.colors, 0, wgpu.WholeSize)
		pass.Draw(d.buffers.vertices, 1, 0, 0)
	}
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return r.deviceLost(err)
	}
	r.dev.Queue.Submit(cmd)
	cmd.Release()

	r.surf.Present()
	return nil
}

// frameError logs and passes through a per-frame failure. The renderer
// stays Ready: the next frame retries from scratch.
func (r *Renderer) frameError(err error) error {
	chart.Logger().Warn("webgpu: frame skipped", "err", err)
	return err
}

// deviceLost invalidates the shared device cache and reports the loss.
func (r *Renderer) deviceLost(cause error) error {
	Invalidate()
	return fmt.Errorf("%w: %v", chart.ErrDeviceLost, cause)
}

// Destroy releases every per-handle resource. The shared device cache is
// untouched. Idempotent.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == stateDestroyed {
		return
	}
	r.releaseLocked()
	r.state = stateDestroyed
}

func (r *Renderer) releaseLocked() {
	if r.pool != nil {
		r.pool.Release()
		r.pool = nil
	}
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}
	if r.uniform != nil {
		r.uniform.Release()
		r.uniform = nil
	}
	if r.pipes != nil {
		r.pipes.release()
		r.pipes = nil
	}
	if r.surf != nil {
		r.surf.Release()
		r.surf = nil
	}
	r.dev = nil
	r.target = nil
}

// gridColor matches the software tier's grid line color.
var gridColor = chart.RGBA{0.5, 0.5, 0.5, 0.35}
