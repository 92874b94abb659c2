package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoaryaa/p2p/pkg/engine"
	"github.com/xoaryaa/p2p/pkg/ir"
)

type fakeHandler struct {
	spec engine.Spec
	run  func(in engine.Inputs, params map[string]any) (engine.Outputs, error)
}

func (h *fakeHandler) Spec() engine.Spec { return h.spec }

func (h *fakeHandler) Run(_ context.Context, _ string, in engine.Inputs, params map[string]any, _ *engine.RunContext) (engine.Outputs, error) {
	return h.run(in, params)
}

type fakeRegistry map[string]engine.Handler

func (r fakeRegistry) Lookup(component string) (engine.Handler, bool) {
	h, ok := r[component]
	return h, ok
}

func sourceHandler(component, port, value string) engine.Handler {
	return &fakeHandler{
		spec: engine.Spec{Component: component, Outputs: []string{port}},
		run: func(engine.Inputs, map[string]any) (engine.Outputs, error) {
			return engine.Outputs{port: value}, nil
		},
	}
}

func TestRun_LinearChain(t *testing.T) {
	var captured []string

	registry := fakeRegistry{
		"Source": sourceHandler("Source", "out", "hello"),
		"Upper": &fakeHandler{
			spec: engine.Spec{Component: "Upper", Requires: []string{"in"}, Outputs: []string{"out"}},
			run: func(in engine.Inputs, _ map[string]any) (engine.Outputs, error) {
				return engine.Outputs{"out": strings.ToUpper(in["in"].(string))}, nil
			},
		},
		"Capture": &fakeHandler{
			spec: engine.Spec{Component: "Capture", AnyInput: true},
			run: func(in engine.Inputs, _ map[string]any) (engine.Outputs, error) {
				v, _ := in.Any()
				captured = append(captured, v.(string))
				return nil, nil
			},
		},
	}

	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "c", Component: "Capture", Inputs: map[string]string{"value": "str"}},
			{ID: "a", Component: "Source", Outputs: map[string]string{"out": "str"}},
			{ID: "b", Component: "Upper", Inputs: map[string]string{"in": "str"}, Outputs: map[string]string{"out": "str"}},
		},
		Edges: []ir.Edge{
			{Source: "a", SourceOutput: "out", Target: "b", TargetInput: "in"},
			{Source: "b", SourceOutput: "out", Target: "c", TargetInput: "value"},
		},
	}

	runner := engine.New(registry)
	require.NoError(t, runner.Run(context.Background(), g, nil))
	assert.Equal(t, []string{"HELLO"}, captured)
}

func TestRun_MissingInput(t *testing.T) {
	registry := fakeRegistry{
		"Needy": &fakeHandler{
			spec: engine.Spec{Component: "Needy", Requires: []string{"in"}},
			run: func(engine.Inputs, map[string]any) (engine.Outputs, error) {
				t.Fatal("handler must not run when its input is unresolved")
				return nil, nil
			},
		},
	}

	g := &ir.Graph{
		Nodes: []ir.Node{{ID: "n", Component: "Needy", Inputs: map[string]string{"in": "str"}}},
	}

	err := engine.New(registry).Run(context.Background(), g, nil)
	var missing *engine.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "n", missing.Node)
	assert.Equal(t, "in", missing.Input)
}

func TestRun_UnrecognizedComponent(t *testing.T) {
	registry := fakeRegistry{
		"Sink": &fakeHandler{
			spec: engine.Spec{Component: "Sink", Requires: []string{"in"}},
			run: func(engine.Inputs, map[string]any) (engine.Outputs, error) {
				return nil, nil
			},
		},
	}

	t.Run("no downstream consumer succeeds", func(t *testing.T) {
		g := &ir.Graph{
			Nodes: []ir.Node{{ID: "mystery", Component: "NotImplemented"}},
		}
		assert.NoError(t, engine.New(registry).Run(context.Background(), g, nil))
	})

	t.Run("downstream consumer of missing output fails", func(t *testing.T) {
		g := &ir.Graph{
			Nodes: []ir.Node{
				{ID: "mystery", Component: "NotImplemented", Outputs: map[string]string{"out": "str"}},
				{ID: "sink", Component: "Sink", Inputs: map[string]string{"in": "str"}},
			},
			Edges: []ir.Edge{
				{Source: "mystery", SourceOutput: "out", Target: "sink", TargetInput: "in"},
			},
		}

		err := engine.New(registry).Run(context.Background(), g, nil)
		var missing *engine.MissingInputError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "sink", missing.Node)
	})
}

func TestRun_FirstEdgeWinsOnDuplicateInputs(t *testing.T) {
	var got string

	registry := fakeRegistry{
		"A": sourceHandler("A", "out", "first"),
		"B": sourceHandler("B", "out", "second"),
		"Sink": &fakeHandler{
			spec: engine.Spec{Component: "Sink", Requires: []string{"in"}},
			run: func(in engine.Inputs, _ map[string]any) (engine.Outputs, error) {
				got = in["in"].(string)
				return nil, nil
			},
		},
	}

	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "a", Component: "A", Outputs: map[string]string{"out": "str"}},
			{ID: "b", Component: "B", Outputs: map[string]string{"out": "str"}},
			{ID: "sink", Component: "Sink", Inputs: map[string]string{"in": "str"}},
		},
		Edges: []ir.Edge{
			{Source: "a", SourceOutput: "out", Target: "sink", TargetInput: "in"},
			{Source: "b", SourceOutput: "out", Target: "sink", TargetInput: "in"},
		},
	}

	require.NoError(t, engine.New(registry).Run(context.Background(), g, nil))
	assert.Equal(t, "first", got)
}

func TestRun_HandlerFailureAbortsRun(t *testing.T) {
	ran := false
	registry := fakeRegistry{
		"Boom": &fakeHandler{
			spec: engine.Spec{Component: "Boom", Outputs: []string{"out"}},
			run: func(engine.Inputs, map[string]any) (engine.Outputs, error) {
				return nil, errors.New("precondition failed")
			},
		},
		"Never": &fakeHandler{
			spec: engine.Spec{Component: "Never"},
			run: func(engine.Inputs, map[string]any) (engine.Outputs, error) {
				ran = true
				return nil, nil
			},
		},
	}

	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "boom", Component: "Boom", Outputs: map[string]string{"out": "str"}},
			{ID: "later", Component: "Never"},
		},
		Edges: []ir.Edge{
			{Source: "boom", SourceOutput: "out", Target: "later", TargetInput: "in"},
		},
	}

	err := engine.New(registry).Run(context.Background(), g, nil)
	var nodeErr *engine.NodeError
	require.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "boom", nodeErr.Node)
	assert.False(t, ran, "downstream node must not execute after a failure")
}

func TestRun_LifecycleHooks(t *testing.T) {
	var started, finished []string

	registry := fakeRegistry{
		"Source": sourceHandler("Source", "out", "v"),
	}
	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "a", Component: "Source", Outputs: map[string]string{"out": "str"}},
			{ID: "mystery", Component: "Unknown"},
		},
	}

	runner := engine.New(registry, engine.WithLifecycleHooks(engine.LifecycleHooks{
		OnNodeStart: func(_ context.Context, ev *engine.NodeEvent) {
			started = append(started, ev.NodeID)
		},
		OnNodeFinish: func(_ context.Context, ev *engine.NodeEvent) {
			finished = append(finished, ev.NodeID)
		},
	}))

	require.NoError(t, runner.Run(context.Background(), g, nil))
	assert.Equal(t, []string{"a", "mystery"}, started)
	assert.Equal(t, []string{"a", "mystery"}, finished)
}

func TestOrder_DeclarationOrderBreaksTies(t *testing.T) {
	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "z", Component: "X"},
			{ID: "m", Component: "X"},
			{ID: "a", Component: "X"},
		},
	}

	order, err := engine.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, order)
}

func TestOrder_RespectsDependencies(t *testing.T) {
	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "sink", Component: "X"},
			{ID: "mid", Component: "X"},
			{ID: "src", Component: "X"},
		},
		Edges: []ir.Edge{
			{Source: "src", SourceOutput: "o", Target: "mid", TargetInput: "i"},
			{Source: "mid", SourceOutput: "o", Target: "sink", TargetInput: "i"},
		},
	}

	order, err := engine.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "mid", "sink"}, order)
}

func TestOrder_CycleFails(t *testing.T) {
	g := &ir.Graph{
		Nodes: []ir.Node{
			{ID: "a", Component: "X"},
			{ID: "b", Component: "X"},
		},
		Edges: []ir.Edge{
			{Source: "a", SourceOutput: "o", Target: "b", TargetInput: "i"},
			{Source: "b", SourceOutput: "o", Target: "a", TargetInput: "i"},
		},
	}

	_, err := engine.Order(g)
	assert.Error(t, err)
}
