package graphql

import (
	"encoding/json"
	"fmt"
)

// Decode re-marshals a decoded response subtree into a typed struct. Unknown
// fields are tolerated: generated selections are schema-driven and usually
// wider than any local struct.
func Decode[T any](v any) (T, error) {
	var result T
	data, err := json.Marshal(v)
	if err != nil {
		return result, fmt.Errorf("error re-marshalling response value:\n>>> %v\n>>> %w", v, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("error decoding response value into %T:\n>>> %v\n>>> %w", result, string(data), err)
	}
	return result, nil
}
