// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

import "sync"

// Pool manages a pool of reusable Geometry objects. After warmup, per-frame
// geometry building is allocation-free in the steady state: the backing
// arrays keep their capacity across frames.
//
// Usage:
//
//	g := pool.Get()
//	defer pool.Put(g)
//	builder.Build(g, in)
type Pool struct {
	pool sync.Pool
}

// NewPool creates a new geometry pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Geometry{}
			},
		},
	}
}

// Get retrieves a geometry from the pool, reset and ready for use.
func (p *Pool) Get() *Geometry {
	g := p.pool.Get().(*Geometry)
	g.Reset()
	return g
}

// Put returns a geometry to the pool for reuse.
func (p *Pool) Put(g *Geometry) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}

// Warmup pre-allocates geometries to avoid allocation during the first
// frames. Each geometry reserves capacity for vertexCap vertices.
func (p *Pool) Warmup(count, vertexCap int) {
	gs := make([]*Geometry, count)
	for i := range gs {
		g := p.Get()
		if cap(g.Positions) < vertexCap*2 {
			g.Positions = make([]float32, 0, vertexCap*2)
			g.Colors = make([]float32, 0, vertexCap*4)
		}
		gs[i] = g
	}
	for _, g := range gs {
		p.Put(g)
	}
}

// DefaultPool is a global geometry pool for convenience.
var DefaultPool = NewPool()
