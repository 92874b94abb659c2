package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// ConsoleJSONWriter serializes whatever single value arrives on any
// inbound port to the run's artifact sink, as one JSON file named after
// the node id. Typed values keep their own field order in the output.
type ConsoleJSONWriter struct{}

func (h *ConsoleJSONWriter) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentConsoleJSONWriter,
		AnyInput:  true,
	}
}

func (h *ConsoleJSONWriter) Run(_ context.Context, nodeID string, in engine.Inputs, _ map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	value, _ := in.Any()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize value: %w", err)
	}

	name := nodeID + ".json"
	if err := rc.ArtifactSink().Write(name, data); err != nil {
		return nil, err
	}
	rc.Log().Info("wrote JSON artifact", "name", name)
	return engine.Outputs{}, nil
}
