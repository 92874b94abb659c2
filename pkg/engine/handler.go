package engine

import "context"

// Inputs carries the resolved inbound values for one node, keyed by input
// port name.
type Inputs map[string]any

// Any returns an arbitrary single inbound value. It is the accessor used
// by sink-style handlers that accept one value on any port.
func (in Inputs) Any() (any, bool) {
	for _, v := range in {
		return v, true
	}
	return nil, false
}

// Outputs carries the values a handler produced, keyed by output port name.
// Handlers without meaningful outputs return an empty (or nil) map.
type Outputs map[string]any

// Spec declares a handler's port contract. The engine uses it to resolve
// inbound edges before dispatch; it performs no value type-checking beyond
// port names.
type Spec struct {
	// Component is the tag nodes use to select this handler.
	Component string
	// Requires lists input ports that must resolve or the run fails.
	Requires []string
	// Optional lists input ports resolved when wired, absent otherwise.
	Optional []string
	// AnyInput accepts the first inbound edge regardless of port name.
	// The resolved value is still required.
	AnyInput bool
	// Outputs lists the ports this handler produces.
	Outputs []string
}

// Handler is the behavior bound to a component tag: it consumes resolved
// inputs plus the node's parameter bag and produces outputs. The node id
// is supplied for terminal handlers that name artifacts after their node.
type Handler interface {
	Spec() Spec
	Run(ctx context.Context, nodeID string, in Inputs, params map[string]any, rc *RunContext) (Outputs, error)
}

// Registry resolves component tags to handlers. An unrecognized tag is not
// fatal to a run; the engine degrades the node to a no-op.
type Registry interface {
	Lookup(component string) (Handler, bool)
}
