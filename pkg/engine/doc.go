/*
Package engine executes pipeline graphs.

A Runner computes a deterministic topological order over the graph's edge
relation, then dispatches each node sequentially to the handler registered
for its component tag. Outputs land in a per-run values table and are
resolved into downstream inputs by scanning the edge list. The run is
strictly single-threaded: no node starts before its upstream dependencies
have deposited their outputs, and the values table never escapes the run.

Side-effecting terminal handlers write through the ArtifactSink port so the
engine stays testable without touching the real filesystem.
*/
package engine
