package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// wordRE keeps alphabetic sequences with internal apostrophes; all
// punctuation and digits are dropped before windowing.
var wordRE = regexp.MustCompile(`[A-Za-z']+`)

// TextSplitter tokenizes each inbound document into word-only tokens and
// produces sliding windows of chunk_size tokens, advancing by
// max(1, chunk_size-overlap) tokens each step. The floor keeps the loop
// terminating when overlap is configured at or above chunk_size.
type TextSplitter struct{}

type textSplitterConfig struct {
	ChunkSize int `mapstructure:"chunk_size"`
	Overlap   int `mapstructure:"overlap"`
}

func (h *TextSplitter) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentTextSplitter,
		Requires:  []string{"docs"},
		Outputs:   []string{"chunks"},
	}
}

func (h *TextSplitter) Run(_ context.Context, _ string, in engine.Inputs, params map[string]any, _ *engine.RunContext) (engine.Outputs, error) {
	cfg := textSplitterConfig{ChunkSize: 512, Overlap: 64}
	if err := decodeParams(params, &cfg); err != nil {
		return nil, err
	}
	if cfg.ChunkSize < 1 {
		return nil, fmt.Errorf("chunk_size must be positive, got %d", cfg.ChunkSize)
	}

	docs, ok := in["docs"].([]Document)
	if !ok {
		return nil, fmt.Errorf("inbound docs is %T, want []Document", in["docs"])
	}

	chunks := make([]Chunk, 0)
	for _, doc := range docs {
		for i, text := range splitWords(doc.Text, cfg.ChunkSize, cfg.Overlap) {
			chunks = append(chunks, Chunk{Doc: doc.Name, ChunkID: i, Text: text})
		}
	}
	return engine.Outputs{"chunks": chunks}, nil
}

func splitWords(text string, chunkSize, overlap int) []string {
	words := wordRE.FindAllString(text, -1)

	step := chunkSize - overlap
	if step < 1 {
		step = 1
	}

	out := make([]string, 0)
	for i := 0; i < len(words); i += step {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		out = append(out, strings.Join(words[i:end], " "))
	}
	return out
}
