package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Geometry values encode as objects with lowercase component keys in
// declaration order ({"x":..,"y":..}); matrices encode as flat arrays in
// column-major order. Numbers round-trip exactly: Go's JSON encoder emits
// the shortest representation that reparses to the same float32/float64.
//
// Use JSON when the bytes must stay portable and dependency-free;
// otherwise prefer Default.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
