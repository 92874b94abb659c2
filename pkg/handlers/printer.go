package handlers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/xoaryaa/p2p/pkg/engine"
)

// ConsolePrinter prints whatever single value arrives on any inbound
// port. Sequences print as a numbered list, one item per line.
type ConsolePrinter struct{}

func (h *ConsolePrinter) Spec() engine.Spec {
	return engine.Spec{
		Component: ComponentConsolePrinter,
		AnyInput:  true,
	}
}

func (h *ConsolePrinter) Run(_ context.Context, _ string, in engine.Inputs, _ map[string]any, rc *engine.RunContext) (engine.Outputs, error) {
	value, _ := in.Any()
	w := rc.Out()

	fmt.Fprintln(w, "=== ConsolePrinter ===")
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			fmt.Fprintf(w, "%02d. %v\n", i+1, rv.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, value)
	}
	return engine.Outputs{}, nil
}
