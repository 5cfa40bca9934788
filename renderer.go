// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/chart/surface"
)

// Renderer is the contract every backend tier implements.
//
// A renderer instance moves through four states:
//
//	Uninitialized -> Initializing -> Ready -> Destroyed
//
// Init may be called at most once per instance. Render before Ready is a
// logged no-op, not an error: frames arriving during initialization are
// dropped. Destroy is idempotent and reachable from any state; after it
// returns, every GPU resource the renderer created has been released.
//
// Render completes when commands are submitted to the backend, not when
// pixels are presented. Callers must not assume either tier blocks until
// the frame is visible.
type Renderer interface {
	// Name returns the backend identifier (e.g. "webgpu", "software").
	Name() string

	// Init binds the renderer to a surface and creates its GPU resources.
	// Returns ErrBackendUnavailable (wrapped) when the tier cannot run on
	// this system, ErrUnsupportedSurface when it cannot draw to s.
	Init(s surface.Surface) error

	// Render draws one frame. Per-frame failures (allocation, transient
	// validation) are returned to the scheduler, which logs and drops the
	// frame; they do not poison the renderer.
	Render(props *RenderProps) error

	// Destroy releases all resources owned by the renderer.
	Destroy()
}

// Capabilities describes what a backend tier can do. Backends that
// implement CapableRenderer report it after Init.
type Capabilities struct {
	// IsGPU indicates hardware-accelerated rendering.
	IsGPU bool

	// Async indicates command submission is asynchronous.
	Async bool

	// MaxTextureSize is the maximum surface dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that report
// their capabilities.
type CapableRenderer interface {
	Renderer

	Capabilities() Capabilities
}

// BackendFactory creates a renderer instance for the given chart kind.
// Factories must return a fresh instance on every call: renderer instances
// are single-use (one Init, one Destroy).
type BackendFactory func(kind Kind) Renderer

// registryEntry is one registered backend tier.
type registryEntry struct {
	name     string
	priority int
	factory  BackendFactory
}

// Standard backend priorities. Higher is tried first.
const (
	// PriorityGPU is the priority of hardware-accelerated tiers.
	PriorityGPU = 100

	// PrioritySoftware is the priority of the CPU fallback tier.
	PrioritySoftware = 10
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registryEntry)
)

// RegisterBackend registers a backend tier. It is typically called from
// init() functions in backend packages:
//
//	import _ "github.com/gogpu/chart/backend/software"
//
// Registering a name that already exists replaces the previous entry.
func RegisterBackend(name string, priority int, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = registryEntry{name: name, priority: priority, factory: factory}
}

// UnregisterBackend removes a backend tier. Useful for testing.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// RegisteredBackends returns registered backend names in negotiation order
// (descending priority, then name for determinism).
func RegisteredBackends() []string {
	entries := orderedEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// orderedEntries snapshots the registry sorted by descending priority.
func orderedEntries() []registryEntry {
	registryMu.RLock()
	entries := make([]registryEntry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	registryMu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})
	return entries
}

// negotiate tries registered backends in priority order and returns the
// first renderer whose Init succeeds. A tier whose Init fails is destroyed
// and logged at Warn; only exhaustion of all tiers is an error.
func negotiate(kind Kind, s surface.Surface, only string) (Renderer, error) {
	entries := orderedEntries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no backends registered", ErrBackendUnavailable)
	}

	var lastErr error
	for _, e := range entries {
		if only != "" && e.name != only {
			continue
		}
		r := e.factory(kind)
		if r == nil {
			continue
		}
		if err := r.Init(s); err != nil {
			// Init must leave no resources behind on failure, but Destroy
			// is idempotent and cheap, so always run it.
			r.Destroy()
			lastErr = err
			Logger().Warn("chart: backend init failed, falling back",
				"backend", e.name, "err", err)
			continue
		}
		Logger().Info("chart: backend selected", "backend", e.name, "kind", kind.String())
		return r, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: all tiers failed: %w", ErrBackendUnavailable, lastErr)
	}
	return nil, fmt.Errorf("%w: no matching backend", ErrBackendUnavailable)
}
