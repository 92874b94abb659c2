package ir

// Node is a single processing step in a pipeline graph. The Component tag
// names the handler that executes it; Inputs and Outputs declare the named
// ports data flows through, mapping port name to a free-form type tag.
type Node struct {
	ID        string            `yaml:"id"`
	Component string            `yaml:"component"`
	Inputs    map[string]string `yaml:"inputs"`
	Outputs   map[string]string `yaml:"outputs"`
	Params    map[string]any    `yaml:"params"`
}

// Edge is a directed data dependency: output SourceOutput of node Source
// feeds input TargetInput of node Target.
type Edge struct {
	Source       string `yaml:"source"`
	SourceOutput string `yaml:"source_output"`
	Target       string `yaml:"target"`
	TargetInput  string `yaml:"target_input"`
}

// Graph is the immutable intermediate representation of a pipeline.
// Node order is preserved for display only; execution order is always
// derived from the edge relation. Metadata is carried through unmodified.
type Graph struct {
	Nodes    []Node         `yaml:"nodes"`
	Edges    []Edge         `yaml:"edges"`
	Metadata map[string]any `yaml:"metadata"`
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, error) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], nil
		}
	}
	return nil, &UnknownNodeError{ID: id}
}

// OutputsOf returns the declared output ports of the node with the given id.
func (g *Graph) OutputsOf(id string) (map[string]string, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	return n.Outputs, nil
}

// InputsOf returns the declared input ports of the node with the given id.
func (g *Graph) InputsOf(id string) (map[string]string, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	return n.Inputs, nil
}
