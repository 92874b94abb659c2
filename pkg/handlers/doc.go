/*
Package handlers provides the built-in component handlers and the registry
the engine dispatches through.

Each handler declares its port contract via an engine.Spec and decodes its
node parameters into a typed, defaulted configuration struct at dispatch
time. The NLP and IO work itself (entity extraction, BM25 ranking, PDF text
extraction) is delegated to collaborator packages; what lives here is the
port plumbing that connects those collaborators to the graph.
*/
package handlers
