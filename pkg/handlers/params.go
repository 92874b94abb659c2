package handlers

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// decodeParams fills target (a pointer to a config struct pre-populated
// with defaults) from a node's parameter bag. Decoding is weakly typed so
// YAML strings and numbers coerce into the declared field types; unknown
// keys are ignored, matching the opaque-bag contract.
func decodeParams(params map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build params decoder: %w", err)
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}
