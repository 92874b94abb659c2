// Package plan renders pipeline graphs for the explain command: a
// numbered topological plan for terminals and a Mermaid flowchart for
// embedding in documentation.
package plan

import (
	"fmt"
	"strings"

	"github.com/xoaryaa/p2p/pkg/engine"
	"github.com/xoaryaa/p2p/pkg/ir"
)

// ASCII renders the graph as a numbered topological plan with one line
// per node and an arrow line per outgoing edge.
func ASCII(g *ir.Graph) (string, error) {
	order, err := engine.Order(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("# ASCII Plan (topological order)\n")
	for i, id := range order {
		node, err := g.Node(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%02d. %s [%s]\n", i+1, node.ID, node.Component)
		for _, e := range g.Edges {
			if e.Source != id {
				continue
			}
			fmt.Fprintf(&sb, "    └─▶ %s  (%s->%s)\n", e.Target, e.SourceOutput, e.TargetInput)
		}
	}
	return sb.String(), nil
}

// Mermaid renders the graph as a Mermaid flowchart (graph TD), labeling
// each edge with its output->input port pair.
func Mermaid(g *ir.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		fmt.Fprintf(&sb, "    %s[\"%s (%s)\"]\n", sanitizeID(node.ID), node.ID, node.Component)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "    %s -- \"%s->%s\" --> %s\n",
			sanitizeID(e.Source), e.SourceOutput, e.TargetInput, sanitizeID(e.Target))
	}
	return sb.String()
}

func sanitizeID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
