package ir

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse constructs a Graph from a raw YAML document. The document must
// carry top-level `nodes` and `edges` sequences; `metadata` is optional.
// Any missing or ill-shaped required field yields a *SchemaError and no
// partial graph.
func Parse(data []byte) (*Graph, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, &SchemaError{Reason: err.Error()}
	}
	if probe == nil {
		return nil, &SchemaError{Reason: "empty document"}
	}
	for _, key := range []string{"nodes", "edges"} {
		if _, ok := probe[key]; !ok {
			return nil, &SchemaError{Field: key, Reason: "required"}
		}
	}

	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, &SchemaError{Reason: err.Error()}
	}

	// Duplicate ids are a validation concern, not a schema one; parsing
	// accepts them so the validator can report them.
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.ID == "" {
			return nil, &SchemaError{Field: fmt.Sprintf("nodes[%d].id", i), Reason: "required"}
		}
		if n.Component == "" {
			return nil, &SchemaError{Field: fmt.Sprintf("nodes[%d].component", i), Reason: "required"}
		}
		if n.Inputs == nil {
			n.Inputs = map[string]string{}
		}
		if n.Outputs == nil {
			n.Outputs = map[string]string{}
		}
		if n.Params == nil {
			n.Params = map[string]any{}
		}
	}

	for i, e := range g.Edges {
		switch {
		case e.Source == "":
			return nil, &SchemaError{Field: fmt.Sprintf("edges[%d].source", i), Reason: "required"}
		case e.SourceOutput == "":
			return nil, &SchemaError{Field: fmt.Sprintf("edges[%d].source_output", i), Reason: "required"}
		case e.Target == "":
			return nil, &SchemaError{Field: fmt.Sprintf("edges[%d].target", i), Reason: "required"}
		case e.TargetInput == "":
			return nil, &SchemaError{Field: fmt.Sprintf("edges[%d].target_input", i), Reason: "required"}
		}
	}

	if g.Metadata == nil {
		g.Metadata = map[string]any{}
	}

	return &g, nil
}

// Encode serializes the graph back to the YAML document format consumed
// by Parse. Encoding then re-parsing yields a graph equal in all node,
// edge and metadata content.
func (g *Graph) Encode() ([]byte, error) {
	out, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}
	return out, nil
}
