package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoaryaa/p2p/pkg/engine"
	"github.com/xoaryaa/p2p/pkg/handlers"
	"github.com/xoaryaa/p2p/pkg/ir"
)

func TestEntityPipeline_EndToEnd(t *testing.T) {
	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "input_text", Component: handlers.ComponentInputText,
				Outputs: map[string]string{"text": "str"}},
			{ID: "ner", Component: handlers.ComponentSpaCyModel,
				Inputs:  map[string]string{"text": "str"},
				Outputs: map[string]string{"doc": "Doc", "ents": "list"}},
			{ID: "print_ents", Component: handlers.ComponentConsolePrinter,
				Inputs: map[string]string{"value": "list"}},
			{ID: "save_ents", Component: handlers.ComponentConsoleJSONWriter,
				Inputs: map[string]string{"value": "list"}},
		},
		Edges: []ir.Edge{
			{Source: "input_text", SourceOutput: "text", Target: "ner", TargetInput: "text"},
			{Source: "ner", SourceOutput: "ents", Target: "print_ents", TargetInput: "value"},
			{Source: "ner", SourceOutput: "ents", Target: "save_ents", TargetInput: "value"},
		},
	}

	var buf bytes.Buffer
	sink := &engine.MemorySink{}
	rc := &engine.RunContext{Stdout: &buf, Sink: sink}

	runner := engine.New(handlers.Default())
	require.NoError(t, runner.Run(context.Background(), g, rc))

	assert.True(t, strings.HasPrefix(buf.String(), "=== ConsolePrinter ===\n"))

	data, ok := sink.Get("save_ents.json")
	require.True(t, ok)
	var ents []handlers.Entity
	require.NoError(t, json.Unmarshal(data, &ents))
}

func TestRetrievalPipeline_EndToEnd(t *testing.T) {
	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "input_query", Component: handlers.ComponentInputQuery,
				Outputs: map[string]string{"query": "str"}},
			{ID: "index", Component: handlers.ComponentBM25Index,
				Inputs:  map[string]string{"docs": "list"},
				Outputs: map[string]string{"index": "Index", "chunks": "list"}},
			{ID: "retrieve", Component: handlers.ComponentBM25Retriever,
				Inputs:  map[string]string{"query": "str", "index": "Index"},
				Outputs: map[string]string{"hits": "list"},
				Params:  map[string]any{"top_k": 1}},
			{ID: "reader", Component: handlers.ComponentLLMReader,
				Inputs:  map[string]string{"context": "list", "question": "str"},
				Outputs: map[string]string{"answer": "str"}},
			{ID: "print_answer", Component: handlers.ComponentConsolePrinter,
				Inputs: map[string]string{"value": "str"}},
			{ID: "chunks", Component: "ChunkSource",
				Outputs: map[string]string{"chunks": "list"}},
		},
		Edges: []ir.Edge{
			{Source: "chunks", SourceOutput: "chunks", Target: "index", TargetInput: "docs"},
			{Source: "index", SourceOutput: "index", Target: "retrieve", TargetInput: "index"},
			{Source: "input_query", SourceOutput: "query", Target: "retrieve", TargetInput: "query"},
			{Source: "retrieve", SourceOutput: "hits", Target: "reader", TargetInput: "context"},
			{Source: "input_query", SourceOutput: "query", Target: "reader", TargetInput: "question"},
			{Source: "reader", SourceOutput: "answer", Target: "print_answer", TargetInput: "value"},
		},
	}

	registry := handlers.Default()
	registry.Register(&chunkSource{chunks: []handlers.Chunk{
		{Doc: "notes.txt", ChunkID: 0, Text: "Apple is opening a new office in Mumbai"},
		{Doc: "notes.txt", ChunkID: 1, Text: "unrelated weather report"},
	}})

	var buf bytes.Buffer
	rc := &engine.RunContext{Query: "What is Apple doing in Mumbai?", Stdout: &buf}

	require.NoError(t, engine.New(registry).Run(context.Background(), g, rc))

	out := buf.String()
	assert.Contains(t, out, "Q: What is Apple doing in Mumbai?")
	assert.Contains(t, out, "Top passage from notes.txt (chunk 0):")
	assert.Contains(t, out, "Apple is opening a new office in Mumbai")
}

// chunkSource feeds a fixed chunk list into a pipeline under test.
type chunkSource struct {
	chunks []handlers.Chunk
}

func (h *chunkSource) Spec() engine.Spec {
	return engine.Spec{Component: "ChunkSource", Outputs: []string{"chunks"}}
}

func (h *chunkSource) Run(_ context.Context, _ string, _ engine.Inputs, _ map[string]any, _ *engine.RunContext) (engine.Outputs, error) {
	return engine.Outputs{"chunks": h.chunks}, nil
}
