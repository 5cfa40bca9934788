// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/geometry"
)

// slotBuffers is one slot's pair of GPU vertex buffers plus their byte
// capacities and the vertex count of the last upload.
type slotBuffers struct {
	positions *wgpu.Buffer
	colors    *wgpu.Buffer
	posCap    uint64
	colCap    uint64
	vertices  uint32
}

func (s *slotBuffers) release() {
	if s.positions != nil {
		s.positions.Release()
		s.positions = nil
	}
	if s.colors != nil {
		s.colors.Release()
		s.colors = nil
	}
	s.posCap, s.colCap, s.vertices = 0, 0, 0
}

// PoolStats counts buffer pool activity; useful in tests and debugging.
type PoolStats struct {
	// Allocations counts buffer creations (including reallocations).
	Allocations uint64

	// Reuses counts uploads that fit an existing buffer.
	Reuses uint64

	// Releases counts buffers destroyed by reallocation or Trim.
	Releases uint64
}

// BufferPool owns the per-series GPU vertex buffers of one renderer
// handle. Slots are keyed by series position: slot i always serves series
// i of the current frame. A slot's buffers are reused when their capacity
// covers the upload and destroyed plus reallocated at the exact required
// size when it does not. The grid slot is separate and grows by 1.5x so
// tick count changes do not reallocate every frame.
//
// Trim must run after every frame to destroy slots at or past the frame's
// series count, otherwise buffers from a wider earlier frame leak.
type BufferPool struct {
	device *wgpu.Device
	queue  *wgpu.Queue
	slots  []*slotBuffers
	grid   slotBuffers
	stats  PoolStats
}

// NewBufferPool creates a pool allocating on the given device.
func NewBufferPool(device *wgpu.Device, queue *wgpu.Queue) *BufferPool {
	return &BufferPool{device: device, queue: queue}
}

// Upload writes the geometry into slot i, reallocating as needed, and
// returns the slot's buffers. Allocation failure wraps
// ErrResourceExhausted; the slot is left empty and safe to retry.
func (p *BufferPool) Upload(i int, g *geometry.Geometry) (*slotBuffers, error) {
	for len(p.slots) <= i {
		p.slots = append(p.slots, &slotBuffers{})
	}
	return p.upload(p.slots[i], g, exactSize, fmt.Sprintf("chart series %d", i))
}

// UploadGrid writes the grid geometry into the persistent grid slot.
func (p *BufferPool) UploadGrid(g *geometry.Geometry) (*slotBuffers, error) {
	return p.upload(&p.grid, g, growCapacity, "chart grid")
}

// exactSize is the series-slot allocation policy: capacity equals the
// request, so a shrinking series releases memory on its next realloc.
func exactSize(_, required uint64) uint64 { return required }

// growCapacity is the grid-slot policy: grow by half, never shrink.
func growCapacity(current, required uint64) uint64 {
	if required <= current {
		return current
	}
	grown := current + current/2
	if grown < required {
		grown = required
	}
	return grown
}

func (p *BufferPool) upload(s *slotBuffers, g *geometry.Geometry, policy func(current, required uint64) uint64, label string) (*slotBuffers, error) {
	posBytes := uint64(len(g.Positions)) * 4
	colBytes := uint64(len(g.Colors)) * 4

	if s.positions == nil || s.posCap < posBytes {
		if err := p.realloc(&s.positions, &s.posCap, policy(s.posCap, posBytes), label+" positions"); err != nil {
			s.release()
			return nil, err
		}
	} else {
		p.stats.Reuses++
	}
	if s.colors == nil || s.colCap < colBytes {
		if err := p.realloc(&s.colors, &s.colCap, policy(s.colCap, colBytes), label+" colors"); err != nil {
			s.release()
			return nil, err
		}
	} else {
		p.stats.Reuses++
	}

	if posBytes > 0 {
		if err := p.queue.WriteBuffer(s.positions, 0, wgpu.ToBytes(g.Positions)); err != nil {
			return nil, fmt.Errorf("webgpu: position upload: %w", err)
		}
	}
	if colBytes > 0 {
		if err := p.queue.WriteBuffer(s.colors, 0, wgpu.ToBytes(g.Colors)); err != nil {
			return nil, fmt.Errorf("webgpu: color upload: %w", err)
		}
	}
	s.vertices = uint32(g.VertexCount())
	return s, nil
}

func (p *BufferPool) realloc(buf **wgpu.Buffer, capacity *uint64, size uint64, label string) error {
	if *buf != nil {
		(*buf).Release()
		*buf = nil
		*capacity = 0
		p.stats.Releases++
	}
	if size == 0 {
		return nil
	}
	b, err := p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("%w: %s (%d bytes): %v", chart.ErrResourceExhausted, label, size, err)
	}
	*buf = b
	*capacity = size
	p.stats.Allocations++
	return nil
}

// Trim destroys series slots with index >= n. The grid slot persists.
func (p *BufferPool) Trim(n int) {
	for i := n; i < len(p.slots); i++ {
		s := p.slots[i]
		if s.positions != nil || s.colors != nil {
			p.stats.Releases++
		}
		s.release()
		p.slots[i] = nil
	}
	if n < len(p.slots) {
		p.slots = p.slots[:n]
	}
}

// Release destroys every buffer the pool owns, including the grid slot.
func (p *BufferPool) Release() {
	p.Trim(0)
	p.grid.release()
}

// Stats returns a snapshot of the pool counters.
func (p *BufferPool) Stats() PoolStats {
	return p.stats
}
