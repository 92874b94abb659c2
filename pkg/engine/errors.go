package engine

import "fmt"

// MissingInputError reports that a node's required input could not be
// resolved at run time: either no edge supplies the port, or the upstream
// node produced no value for it. Fatal to the run.
type MissingInputError struct {
	Node  string
	Input string // empty for any-port handlers with no inbound edge at all
}

func (e *MissingInputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("node %q has no inbound data", e.Node)
	}
	return fmt.Sprintf("node %q missing required input %q", e.Node, e.Input)
}

// NodeError wraps a handler failure with the node it occurred at. It
// covers handler precondition failures (empty retrieval context, an
// unavailable model) as well as IO errors inside handlers.
type NodeError struct {
	Node      string
	Component string
	Err       error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q (%s): %v", e.Node, e.Component, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
