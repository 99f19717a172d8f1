// Package observability provides hooks for logging and metrics around a
// dancing-links run.
//
// The traversal packages stay free of any logging or metrics backend.
// Instead they report events to hooks registered here at startup:
//
//	func main() {
//	    observability.SetDanceHooks(&myDanceHooks{})
//	    observability.SetTeardownHooks(&myTeardownHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Dance().OnDanceStart(ctx, runID, size)
//	// ... traverse ...
//	observability.Dance().OnDanceComplete(ctx, runID, levels, snapshots, duration, err)
//
// Defaults are no-ops, so an unregistered hook costs one interface call.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Dance Hooks
// =============================================================================

// DanceHooks receives events from a traversal.
type DanceHooks interface {
	// OnDanceStart is called before the first level with the ring size.
	OnDanceStart(ctx context.Context, runID string, size int)

	// OnStep is called for every removal and restoration snapshot. size is
	// the number of nodes in the ring as seen from the level's node.
	OnStep(ctx context.Context, runID string, depth int, phase string, size int)

	// OnDanceComplete is called once the ring has been fully restored.
	OnDanceComplete(ctx context.Context, runID string, levels, snapshots int, duration time.Duration, err error)
}

// =============================================================================
// Teardown Hooks
// =============================================================================

// TeardownHooks receives events from releasing a ring.
type TeardownHooks interface {
	// OnTeardown records how many nodes were released.
	OnTeardown(ctx context.Context, deleted int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDanceHooks is a no-op implementation of DanceHooks.
type NoopDanceHooks struct{}

func (NoopDanceHooks) OnDanceStart(context.Context, string, int) {}

func (NoopDanceHooks) OnStep(context.Context, string, int, string, int) {}

func (NoopDanceHooks) OnDanceComplete(context.Context, string, int, int, time.Duration, error) {}

// NoopTeardownHooks is a no-op implementation of TeardownHooks.
type NoopTeardownHooks struct{}

func (NoopTeardownHooks) OnTeardown(context.Context, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	danceHooks    DanceHooks    = NoopDanceHooks{}
	teardownHooks TeardownHooks = NoopTeardownHooks{}
	hooksMu       sync.RWMutex
)

// SetDanceHooks registers custom traversal hooks.
// This should be called once at application startup before any traversal.
func SetDanceHooks(h DanceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		danceHooks = h
	}
}

// SetTeardownHooks registers custom teardown hooks.
func SetTeardownHooks(h TeardownHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		teardownHooks = h
	}
}

// Dance returns the registered traversal hooks.
func Dance() DanceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return danceHooks
}

// Teardown returns the registered teardown hooks.
func Teardown() TeardownHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return teardownHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	danceHooks = NoopDanceHooks{}
	teardownHooks = NoopTeardownHooks{}
}
