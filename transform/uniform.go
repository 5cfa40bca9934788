// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transform

import (
	"encoding/binary"
	"math"
)

// Block is the uniform data consumed by the chart shaders: a column-major
// 4x4 pixel-to-clip matrix plus the target resolution in device pixels.
// The trailing pad keeps the struct at a 16-byte multiple as WGSL uniform
// layout requires.
//
// The matrix maps x' = x/w*2-1 and y' = 1-y/h*2: the Y sign flips here and
// nowhere else (geometry is already in screen-down pixel space).
type Block struct {
	Transform  [16]float32
	Resolution [2]float32
	_pad       [2]float32
}

// ByteSize is the size of a packed Block in bytes.
const ByteSize = (16 + 2 + 2) * 4

// NewBlock builds the pixel-to-clip uniform block for a target of the
// given size in device pixels. Zero or negative dimensions are clamped to
// one pixel so the matrix stays finite.
func NewBlock(width, height float32) Block {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	var b Block
	// Column-major: column i occupies Transform[4i:4i+4].
	b.Transform[0] = 2 / width   // col 0: x scale
	b.Transform[5] = -2 / height // col 1: y scale, flipped once
	b.Transform[10] = 1
	b.Transform[12] = -1 // col 3: translate
	b.Transform[13] = 1
	b.Transform[15] = 1
	b.Resolution[0] = width
	b.Resolution[1] = height
	return b
}

// Bytes packs the block little-endian for GPU upload.
func (b *Block) Bytes() []byte {
	out := make([]byte, ByteSize)
	for i, f := range b.Transform {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	binary.LittleEndian.PutUint32(out[64:], math.Float32bits(b.Resolution[0]))
	binary.LittleEndian.PutUint32(out[68:], math.Float32bits(b.Resolution[1]))
	return out
}

// Apply maps a pixel coordinate through the block's matrix to clip space.
// Used by tests and by the software tier, which shares the same transform
// semantics even though it rasterizes in pixel space.
func (b *Block) Apply(x, y float32) (cx, cy float32) {
	cx = b.Transform[0]*x + b.Transform[4]*y + b.Transform[12]
	cy = b.Transform[1]*x + b.Transform[5]*y + b.Transform[13]
	return cx, cy
}
