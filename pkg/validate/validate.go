// Package validate implements the structural validator for pipeline graphs.
//
// Validation is a pure function over an ir.Graph. It runs four independent
// checks and accumulates an ordered diagnostic report; it never aborts on
// the first defect and never panics on inconsistent input. Defects found by
// an earlier check (a dangling edge, a duplicate id) are skipped, not
// re-raised, by the later checks that would otherwise trip over them.
package validate

import (
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/xoaryaa/p2p/pkg/ir"
)

// Status tags a diagnostic as a passing or failing finding.
type Status string

const (
	OK  Status = "OK"
	ERR Status = "ERR"
)

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Status  Status
	Message string
}

// Report is the ordered list of diagnostics produced by one validation.
type Report []Diagnostic

// Failed reports whether any diagnostic carries ERR status.
func (r Report) Failed() bool {
	for _, d := range r {
		if d.Status == ERR {
			return true
		}
	}
	return false
}

// Check runs the four structural checks against g: node id uniqueness,
// edge endpoint existence, port existence, and acyclicity. All checks run
// regardless of earlier failures. The returned bool is true iff no check
// produced an ERR diagnostic.
func Check(g *ir.Graph) (bool, Report) {
	var report Report

	nodeIDs := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		nodeIDs[n.ID] = true
	}

	// 1. Unique node ids.
	if len(nodeIDs) != len(g.Nodes) {
		report = append(report, Diagnostic{ERR, "Duplicate node IDs detected."})
	} else {
		report = append(report, Diagnostic{OK, "Node IDs are unique."})
	}

	// 2. Edges reference existing nodes.
	edgesOK := true
	for _, e := range g.Edges {
		if !nodeIDs[e.Source] || !nodeIDs[e.Target] {
			edgesOK = false
			report = append(report, Diagnostic{ERR,
				fmt.Sprintf("Edge %s->%s references missing node(s).", e.Source, e.Target)})
		}
	}
	if edgesOK {
		report = append(report, Diagnostic{OK, "All edges reference existing nodes."})
	}

	// 3. Edge endpoints name declared ports. Edges whose endpoints are
	// missing were already reported by check 2 and are skipped here.
	portsOK := true
	for _, e := range g.Edges {
		if !nodeIDs[e.Source] || !nodeIDs[e.Target] {
			continue
		}
		outs, err := g.OutputsOf(e.Source)
		if err != nil {
			continue
		}
		ins, err := g.InputsOf(e.Target)
		if err != nil {
			continue
		}
		if _, ok := outs[e.SourceOutput]; !ok {
			portsOK = false
			report = append(report, Diagnostic{ERR,
				fmt.Sprintf("Edge from %s.%s not an output on that node.", e.Source, e.SourceOutput)})
		}
		if _, ok := ins[e.TargetInput]; !ok {
			portsOK = false
			report = append(report, Diagnostic{ERR,
				fmt.Sprintf("Edge to %s.%s not an input on that node.", e.Target, e.TargetInput)})
		}
	}
	if portsOK {
		report = append(report, Diagnostic{OK, "All edge endpoints correspond to declared inputs/outputs."})
	}

	// 4. Acyclicity. Dangling edges are left out of the directed graph so
	// a defect already flagged above cannot abort this check.
	if acyclic(g, nodeIDs) {
		report = append(report, Diagnostic{OK, "Graph is acyclic."})
	} else {
		report = append(report, Diagnostic{ERR, "Cycle detected in the graph."})
	}

	return !report.Failed(), report
}

func acyclic(g *ir.Graph, nodeIDs map[string]bool) bool {
	dg := graph.New(graph.StringHash, graph.Directed())
	for id := range nodeIDs {
		// Duplicate ids collapse into one vertex; check 1 already covers them.
		_ = dg.AddVertex(id)
	}
	for _, e := range g.Edges {
		if !nodeIDs[e.Source] || !nodeIDs[e.Target] {
			continue
		}
		// Parallel edges between the same pair of nodes (distinct ports)
		// are a single dependency for ordering purposes.
		if err := dg.AddEdge(e.Source, e.Target); err != nil && err != graph.ErrEdgeAlreadyExists {
			return false
		}
	}
	_, err := graph.TopologicalSort(dg)
	return err == nil
}
