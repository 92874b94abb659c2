package ir

import "fmt"

// SchemaError reports a malformed graph document: a required field is
// absent or has the wrong shape. Parsing stops at the first such defect;
// no partial graph is returned.
type SchemaError struct {
	Field  string // offending field, empty when the document itself is unreadable
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid graph document: %s", e.Reason)
	}
	return fmt.Sprintf("invalid graph document: field %q: %s", e.Field, e.Reason)
}

// UnknownNodeError reports a lookup by a node id that does not exist in
// the graph. Once validation has passed this is only reachable through a
// programming error, since a passing report guarantees all referenced
// ids exist.
type UnknownNodeError struct {
	ID string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %q", e.ID)
}
