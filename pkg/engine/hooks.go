package engine

import (
	"context"
	"time"
)

// NodeEvent describes the start or finish of one node's execution.
type NodeEvent struct {
	NodeID    string
	Component string
	// Duration and Err are populated only on finish events.
	Duration time.Duration
	Err      error
}

// LifecycleHooks defines optional callbacks for run observability. Nil
// callbacks are skipped. Hooks run synchronously on the engine's single
// execution thread, so they must not block.
type LifecycleHooks struct {
	OnNodeStart  func(context.Context, *NodeEvent)
	OnNodeFinish func(context.Context, *NodeEvent)
}

func (h LifecycleHooks) nodeStart(ctx context.Context, ev *NodeEvent) {
	if h.OnNodeStart != nil {
		h.OnNodeStart(ctx, ev)
	}
}

func (h LifecycleHooks) nodeFinish(ctx context.Context, ev *NodeEvent) {
	if h.OnNodeFinish != nil {
		h.OnNodeFinish(ctx, ev)
	}
}
