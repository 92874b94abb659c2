package handlers

import (
	"context"
	"fmt"

	"github.com/xoaryaa/p2p/internal/bm25"
	"github.com/xoaryaa/p2p/pkg/engine"
)

// BM25Indexer builds a ranking structure over the inbound chunk texts.
// The `index` output is an opaque handle carrying its chunk list; the
// chunks are also passed through unchanged on the `chunks` port.
type BM25Indexer struct{}

func (h *BM25Indexer) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentBM25Index,
		Requires:  []string{"docs"},
		Outputs:   []string{"index", "chunks"},
	}
}

func (h *BM25Indexer) Run(_ context.Context, _ string, in engine.Inputs, _ map[string]any, _ *engine.RunContext) (engine.Outputs, error) {
	chunks, ok := in["docs"].([]Chunk)
	if !ok {
		return nil, fmt.Errorf("inbound chunks is %T, want []Chunk", in["docs"])
	}

	corpus := make([][]string, len(chunks))
	for i, ch := range chunks {
		corpus[i] = bm25.Tokenize(ch.Text)
	}
	index := &SearchIndex{okapi: bm25.New(corpus), chunks: chunks}

	return engine.Outputs{"index": index, "chunks": chunks}, nil
}

// BM25Retriever scores its inbound query against the index and emits the
// top_k highest scoring chunks as hits, ties broken by ascending original
// chunk order.
type BM25Retriever struct{}

type bm25RetrieverConfig struct {
	TopK int `mapstructure:"top_k"`
}

func (h *BM25Retriever) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentBM25Retriever,
		Requires:  []string{"query", "index"},
		Outputs:   []string{"hits"},
	}
}

func (h *BM25Retriever) Run(_ context.Context, _ string, in engine.Inputs, params map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	cfg := bm25RetrieverConfig{TopK: rc.RetrieverTopK()}
	if err := decodeParams(params, &cfg); err != nil {
		return nil, err
	}
	if cfg.TopK < 1 {
		cfg.TopK = engine.DefaultTopK
	}

	query, ok := in["query"].(string)
	if !ok {
		return nil, fmt.Errorf("inbound query is %T, want string", in["query"])
	}
	index, ok := in["index"].(*SearchIndex)
	if !ok {
		return nil, fmt.Errorf("inbound index is %T, want *SearchIndex", in["index"])
	}

	hits := index.Search(query, cfg.TopK)
	return engine.Outputs{"hits": hits}, nil
}
