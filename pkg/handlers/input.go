package handlers

import (
	"context"
	"os"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// FallbackText is used by InputText when the caller supplies neither
// inline text nor a readable text file.
const FallbackText = "Apple is opening a new office in Mumbai next year. Tim Cook met Prime Minister Modi in New Delhi."

// FallbackQuery is used by InputQuery when the caller supplies no query.
const FallbackQuery = "What is Apple doing in Mumbai?"

// InputText produces the run's input text on its `text` port. Priority:
// inline text, then the contents of the caller's text file, then the
// built-in fallback sentence.
type InputText struct{}

func (h *InputText) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentInputText,
		Outputs:   []string{"text"},
	}
}

func (h *InputText) Run(_ context.Context, _ string, _ engine.Inputs, _ map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	text := rc.Text
	if text == "" && rc.TextFile != "" {
		data, err := os.ReadFile(rc.TextFile)
		if err != nil {
			rc.Log().Warn("could not read text file, using fallback", "path", rc.TextFile, "err", err)
		} else {
			text = string(data)
		}
	}
	if text == "" {
		text = FallbackText
	}
	return engine.Outputs{"text": text}, nil
}

// InputQuery produces the run's query text on its `query` port, falling
// back to the built-in question.
type InputQuery struct{}

func (h *InputQuery) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentInputQuery,
		Outputs:   []string{"query"},
	}
}

func (h *InputQuery) Run(_ context.Context, _ string, _ engine.Inputs, _ map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	query := rc.Query
	if query == "" {
		query = FallbackQuery
	}
	return engine.Outputs{"query": query}, nil
}
