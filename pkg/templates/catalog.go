// Package templates is the on-disk template catalog, compiled into the
// binary. It supplies pre-built pipeline documents for a closed set of
// task names; the documents are ordinary graph YAML and go through the
// same parser as user-authored files.
package templates

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xoaryaa/p2p/pkg/ir"
)

//go:embed ner.yaml rag_bm25.yaml
var files embed.FS

// Tasks returns the known task names, in catalog order.
func Tasks() []string {
	return []string{"ner", "rag-bm25"}
}

// Raw returns the template document for a task name. Task names are
// case-insensitive; hyphens map to the underscored file names.
func Raw(task string) ([]byte, error) {
	name := strings.ToLower(task)
	known := false
	for _, t := range Tasks() {
		if name == t {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown task %q, use one of: %s", task, strings.Join(Tasks(), ", "))
	}
	return files.ReadFile(strings.ReplaceAll(name, "-", "_") + ".yaml")
}

// Load parses the template for a task into a Graph.
func Load(task string) (*ir.Graph, error) {
	data, err := Raw(task)
	if err != nil {
		return nil, err
	}
	return ir.Parse(data)
}
