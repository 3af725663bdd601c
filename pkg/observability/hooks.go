// Package observability provides hooks for instrumenting diagram rendering.
//
// Libraries emit events through the registered hooks; the CLI (or any other
// consumer) decides what to do with them. The default hooks do nothing, so
// rendering carries no dependency on a logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Renderers call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, "png", nodeCount)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, "png", size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Render stages reported through OnStageComplete.
const (
	StageIcons   = "icons"
	StageLayout  = "layout"
	StageConvert = "convert"
)

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	// OnRenderStart is called once the diagram passed validation.
	OnRenderStart(ctx context.Context, format string, nodeCount int)

	// OnStageComplete is called after each pipeline stage that ran.
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)

	// OnRenderComplete is called with the output size, or the error that
	// stopped the render.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnStageComplete(context.Context, string, time.Duration, error)       {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil value is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
