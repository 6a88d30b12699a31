package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Spline models are plain structs of ints and float64 slices, which JSON
// round-trips exactly (float64 values survive via shortest-representation
// encoding). Use JSON when portability matters more than encode speed.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// This affects newly written snapshots only: persisted files record the
// codec name in their header and are decoded with the codec they name.
var Default Codec = GoJSON{}
