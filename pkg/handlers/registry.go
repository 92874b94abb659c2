package handlers

import (
	"sync"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// Component tags understood by the default registry. The tags are part of
// the graph document format and match the names templates use.
const (
	ComponentInputText         = "InputText"
	ComponentSpaCyModel        = "SpaCyModel"
	ComponentConsolePrinter    = "ConsolePrinter"
	ComponentPDFLoader         = "PDFLoader"
	ComponentTextSplitter      = "TextSplitter"
	ComponentBM25Index         = "BM25Index"
	ComponentInputQuery        = "InputQuery"
	ComponentBM25Retriever     = "BM25Retriever"
	ComponentLLMReader         = "LLMReader"
	ComponentConsoleJSONWriter = "ConsoleJSONWriter"
)

// Registry maps component tags to handlers. It satisfies engine.Registry.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]engine.Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]engine.Handler)}
}

// Register adds a handler under its declared component tag. An existing
// handler with the same tag is overwritten.
func (r *Registry) Register(h engine.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Spec().Component] = h
}

// Lookup resolves a component tag.
func (r *Registry) Lookup(component string) (engine.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[component]
	return h, ok
}

// Default returns a registry with every built-in handler registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&InputText{})
	r.Register(&EntityTagger{})
	r.Register(&ConsolePrinter{})
	r.Register(&PDFLoader{})
	r.Register(&TextSplitter{})
	r.Register(&BM25Indexer{})
	r.Register(&InputQuery{})
	r.Register(&BM25Retriever{})
	r.Register(&LLMReader{})
	r.Register(&ConsoleJSONWriter{})
	return r
}
