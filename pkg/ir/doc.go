/*
Package ir holds the graph intermediate representation for pipelines.

A pipeline is a directed graph of typed nodes connected by typed edges.
Each node names a component (the handler that will execute it), declares
its input and output ports, and carries an opaque parameter bag. The IR
is a pure value structure: it is constructed once by Parse, never mutated,
and exposes only lookups. Validation lives in pkg/validate and execution
in pkg/engine.
*/
package ir
