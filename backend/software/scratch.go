// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import "github.com/gogpu/chart/geometry"

// scratch holds per-slot geometry buffers across frames so steady-state
// rendering is allocation free. Slot i serves series i; the grid has its
// own persistent slot. The contract mirrors the GPU buffer pool: slots are
// reused while they exist, and trim releases every slot at or past the
// current series count after each frame.
type scratch struct {
	series   []*geometry.Geometry
	gridSlot *geometry.Geometry
}

// slot returns the scratch geometry for series index i, growing the slot
// table on demand.
func (s *scratch) slot(i int) *geometry.Geometry {
	for len(s.series) <= i {
		s.series = append(s.series, nil)
	}
	if s.series[i] == nil {
		s.series[i] = geometry.DefaultPool.Get()
	}
	return s.series[i]
}

// grid returns the persistent grid slot.
func (s *scratch) grid() *geometry.Geometry {
	if s.gridSlot == nil {
		s.gridSlot = geometry.DefaultPool.Get()
	}
	return s.gridSlot
}

// trim releases series slots with index >= n back to the pool. The grid
// slot is persistent and unaffected.
func (s *scratch) trim(n int) {
	for i := n; i < len(s.series); i++ {
		geometry.DefaultPool.Put(s.series[i])
		s.series[i] = nil
	}
	if n < len(s.series) {
		s.series = s.series[:n]
	}
}

// release returns every slot, including the grid slot, to the pool.
func (s *scratch) release() {
	s.trim(0)
	if s.gridSlot != nil {
		geometry.DefaultPool.Put(s.gridSlot)
		s.gridSlot = nil
	}
}
