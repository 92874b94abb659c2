package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dominikbraun/graph"

	"github.com/xoaryaa/p2p/internal/logging"
	"github.com/xoaryaa/p2p/pkg/ir"
)

// Runner executes pipeline graphs against a handler registry.
type Runner struct {
	registry Registry
	logger   *slog.Logger
	hooks    LifecycleHooks
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger for progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// New creates a Runner that dispatches to the given registry.
func New(registry Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: registry,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes g to completion. It returns nil when every node dispatched
// without a fatal condition, and the first fatal error otherwise; no
// further nodes execute after a failure. An unrecognized component tag is
// not fatal: the node becomes a no-op with empty outputs and any
// consequence is deferred to downstream input resolution.
func (r *Runner) Run(ctx context.Context, g *ir.Graph, rc *RunContext) error {
	if rc == nil {
		rc = &RunContext{}
	}
	if rc.Logger == nil {
		rc.Logger = r.logger
	}

	order, err := Order(g)
	if err != nil {
		return fmt.Errorf("compute execution order: %w", err)
	}
	r.logger.Info("starting run", "nodes", len(order))

	// Values table: node id -> output port -> produced value. Owned by
	// this run and never exposed outside it.
	values := make(map[string]Outputs, len(order))

	for _, id := range order {
		if err := ctx.Err(); err != nil {
			return err
		}

		node, err := g.Node(id)
		if err != nil {
			return err
		}

		ev := &NodeEvent{NodeID: id, Component: node.Component}
		r.hooks.nodeStart(ctx, ev)
		started := time.Now()

		handler, ok := r.registry.Lookup(node.Component)
		if !ok {
			r.logger.Warn("component not implemented, skipping node",
				"component", node.Component, "node", id)
			values[id] = Outputs{}
			r.hooks.nodeFinish(ctx, &NodeEvent{NodeID: id, Component: node.Component, Duration: time.Since(started)})
			continue
		}

		in, err := r.resolveInputs(g, id, handler.Spec(), values)
		if err == nil {
			r.logger.Debug("dispatching node", "node", id, "component", node.Component)
			var out Outputs
			out, err = handler.Run(ctx, id, in, node.Params, rc)
			if err == nil {
				if out == nil {
					out = Outputs{}
				}
				values[id] = out
			} else {
				err = &NodeError{Node: id, Component: node.Component, Err: err}
			}
		}

		r.hooks.nodeFinish(ctx, &NodeEvent{
			NodeID:    id,
			Component: node.Component,
			Duration:  time.Since(started),
			Err:       err,
		})
		if err != nil {
			r.logger.Error("run failed", "node", id, "err", err)
			return err
		}
	}

	r.logger.Info("run complete")
	return nil
}

// resolveInputs scans the edge list for each input the handler declares
// and fetches the corresponding upstream value. The first matching edge in
// edge-list order wins; later edges into the same port are shadowed, which
// preserves the documented resolution policy.
func (r *Runner) resolveInputs(g *ir.Graph, nodeID string, spec Spec, values map[string]Outputs) (Inputs, error) {
	in := make(Inputs)

	if spec.AnyInput {
		found := false
		for _, e := range g.Edges {
			if e.Target != nodeID {
				continue
			}
			if found {
				r.logger.Debug("ignoring shadowed inbound edge",
					"node", nodeID, "source", e.Source, "port", e.TargetInput)
				continue
			}
			v, ok := values[e.Source][e.SourceOutput]
			if !ok {
				return nil, &MissingInputError{Node: nodeID}
			}
			in[e.TargetInput] = v
			found = true
		}
		if !found {
			return nil, &MissingInputError{Node: nodeID}
		}
		return in, nil
	}

	resolve := func(port string) (any, bool, error) {
		found := false
		var value any
		for _, e := range g.Edges {
			if e.Target != nodeID || e.TargetInput != port {
				continue
			}
			if found {
				r.logger.Debug("ignoring shadowed inbound edge",
					"node", nodeID, "source", e.Source, "port", port)
				continue
			}
			v, ok := values[e.Source][e.SourceOutput]
			if !ok {
				return nil, false, &MissingInputError{Node: nodeID, Input: port}
			}
			value = v
			found = true
		}
		return value, found, nil
	}

	for _, port := range spec.Requires {
		v, found, err := resolve(port)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &MissingInputError{Node: nodeID, Input: port}
		}
		in[port] = v
	}
	for _, port := range spec.Optional {
		// An optional port with no edge, or whose upstream produced no
		// value, simply stays unset.
		v, found, err := resolve(port)
		if err == nil && found {
			in[port] = v
		}
	}
	return in, nil
}

// Order computes a deterministic topological order of g's node ids. Ties
// between independent nodes break by declaration order; callers may rely
// only on every node appearing after all of its upstream dependencies.
func Order(g *ir.Graph) ([]string, error) {
	index := make(map[string]int, len(g.Nodes))
	dg := graph.New(graph.StringHash, graph.Directed())
	for i, n := range g.Nodes {
		if _, dup := index[n.ID]; !dup {
			index[n.ID] = i
		}
		if err := dg.AddVertex(n.ID); err != nil && err != graph.ErrVertexAlreadyExists {
			return nil, err
		}
	}
	for _, e := range g.Edges {
		if err := dg.AddEdge(e.Source, e.Target); err != nil && err != graph.ErrEdgeAlreadyExists {
			return nil, fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, err)
		}
	}
	order, err := graph.StableTopologicalSort(dg, func(a, b string) bool {
		return index[a] < index[b]
	})
	if err != nil {
		return nil, fmt.Errorf("topological sort: %w", err)
	}
	return order, nil
}
