// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package webgpu

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/chart"
)

// DeviceInfo bundles the process-wide WebGPU objects shared by every chart
// handle. Device acquisition is expensive (instance, adapter and device
// requests can each take tens of milliseconds), so the result is cached
// for the lifetime of the process and only discarded on device loss.
type DeviceInfo struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	// Limits are the limits the device was created with.
	Limits wgpu.Limits
}

func (d *DeviceInfo) release() {
	if d.Queue != nil {
		d.Queue.Release()
	}
	if d.Device != nil {
		d.Device.Release()
	}
	if d.Adapter != nil {
		d.Adapter.Release()
	}
	if d.Instance != nil {
		d.Instance.Release()
	}
}

// acquisition is one in-flight device request. Concurrent callers attach
// to the first caller's request instead of issuing their own; the result
// is published before done is closed.
type acquisition struct {
	done chan struct{}
	info *DeviceInfo
	err  error
}

var (
	deviceMu sync.Mutex
	cached   *DeviceInfo
	pending  *acquisition
)

// AcquireDevice returns the cached process-wide device, creating it on
// first use. Concurrent first-use callers share a single request. A failed
// acquisition is not cached: the next caller retries, so a transient
// driver hiccup does not permanently disable the tier.
func AcquireDevice() (*DeviceInfo, error) {
	deviceMu.Lock()
	if cached != nil {
		info := cached
		deviceMu.Unlock()
		return info, nil
	}
	if pending != nil {
		p := pending
		deviceMu.Unlock()
		<-p.done
		return p.info, p.err
	}
	p := &acquisition{done: make(chan struct{})}
	pending = p
	deviceMu.Unlock()

	info, err := requestDevice()

	p.info, p.err = info, err

	deviceMu.Lock()
	if err == nil {
		cached = info
	}
	pending = nil
	deviceMu.Unlock()

	close(p.done)
	return info, err
}

// Invalidate discards the cached device after a loss. The next
// AcquireDevice call requests a fresh one. Renderer handles that still
// point at the lost device keep failing until their next Init.
func Invalidate() {
	deviceMu.Lock()
	info := cached
	cached = nil
	deviceMu.Unlock()

	if info == nil {
		return
	}
	chart.Logger().Warn("webgpu: device invalidated")
	info.release()
}

// markDeviceLost is the driver-side loss notification, registered on the
// device at creation. It discards the cache so the next acquisition
// requests a fresh device even when no render call observed the loss.
func markDeviceLost(reason wgpu.DeviceLostReason, message string) {
	chart.Logger().Warn("webgpu: device lost", "reason", reason, "message", message)
	Invalidate()
}

// requestDevice walks instance -> adapter -> device -> queue. Any missing
// rung means WebGPU is not available on this system and the tier reports
// ErrBackendUnavailable so negotiation can fall through.
func requestDevice() (*DeviceInfo, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, fmt.Errorf("%w: webgpu instance not available", chart.ErrBackendUnavailable)
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: no suitable adapter: %v", chart.ErrBackendUnavailable, err)
	}

	limits := wgpu.DefaultLimits()
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "chart device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limits,
		},
		DeviceLostCallback: markDeviceLost,
	})
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: device request failed: %v", chart.ErrBackendUnavailable, err)
	}

	queue := device.GetQueue()

	chart.Logger().Info("webgpu: device acquired",
		"maxTextureSize", limits.MaxTextureDimension2D)

	return &DeviceInfo{
		Instance: instance,
		Adapter:  adapter,
		Device:   device,
		Queue:    queue,
		Limits:   limits,
	}, nil
}
