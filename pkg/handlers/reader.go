package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// ErrEmptyContext is returned when LLMReader receives no retrieval hits.
var ErrEmptyContext = errors.New("empty retrieval context")

// LLMReader synthesizes an answer from its retrieval context, citing the
// single highest-ranked hit. An optional `question` input is prefixed to
// the answer. An empty context is a precondition failure and fatal to
// the run.
type LLMReader struct{}

func (h *LLMReader) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentLLMReader,
		Requires:  []string{"context"},
		Optional:  []string{"question"},
		Outputs:   []string{"answer"},
	}
}

func (h *LLMReader) Run(_ context.Context, _ string, in engine.Inputs, _ map[string]any, _ *engine.RunContext) (engine.Outputs, error) {
	hits, ok := in["context"].([]Hit)
	if !ok {
		return nil, fmt.Errorf("inbound context is %T, want []Hit", in["context"])
	}
	if len(hits) == 0 {
		return nil, ErrEmptyContext
	}

	top := hits[0]
	answer := fmt.Sprintf("Top passage from %s (chunk %d):\n%s", top.Doc, top.ChunkID, top.Text)
	if question, ok := in["question"].(string); ok && question != "" {
		answer = "Q: " + question + "\n" + answer
	}
	return engine.Outputs{"answer": answer}, nil
}
