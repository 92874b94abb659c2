package handlers

import (
	"context"
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// DefaultEntityModel is the model name assumed when a node supplies none.
const DefaultEntityModel = "en_core_web_sm"

// EntityTagger runs named-entity extraction over its inbound text. It is
// registered under the SpaCyModel tag for graph compatibility; the actual
// extraction is delegated to the prose annotator, whose bundled English
// model stands in for the named spaCy model.
type EntityTagger struct{}

type entityTaggerConfig struct {
	Model string `mapstructure:"model"`
}

func (h *EntityTagger) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentSpaCyModel,
		Requires:  []string{"text"},
		Outputs:   []string{"doc", "ents"},
	}
}

func (h *EntityTagger) Run(_ context.Context, _ string, in engine.Inputs, params map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	cfg := entityTaggerConfig{Model: DefaultEntityModel}
	if err := decodeParams(params, &cfg); err != nil {
		return nil, err
	}

	text, ok := in["text"].(string)
	if !ok {
		return nil, fmt.Errorf("inbound text is %T, want string", in["text"])
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("could not load entity model %q: %w", cfg.Model, err)
	}

	ents := make([]Entity, 0)
	for _, e := range doc.Entities() {
		ents = append(ents, Entity{Text: e.Text, Label: e.Label})
	}
	rc.Log().Debug("extracted entities", "model", cfg.Model, "count", len(ents))

	return engine.Outputs{"doc": doc, "ents": ents}, nil
}
