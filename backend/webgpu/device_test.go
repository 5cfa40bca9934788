// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package webgpu

import "testing"

func TestMarkDeviceLostDiscardsCache(t *testing.T) {
	deviceMu.Lock()
	prev := cached
	cached = &DeviceInfo{}
	deviceMu.Unlock()
	t.Cleanup(func() {
		deviceMu.Lock()
		cached = prev
		deviceMu.Unlock()
	})

	markDeviceLost(0, "test loss")

	deviceMu.Lock()
	got := cached
	deviceMu.Unlock()
	if got != nil {
		t.Error("device cache survived a loss notification")
	}
}

func TestInvalidateWithoutDevice(t *testing.T) {
	// Must be safe when nothing was ever acquired.
	Invalidate()
	Invalidate()
}
