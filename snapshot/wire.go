package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/chainsolve/dataflow-engine/value"
)

// WireValue is the §6 wire projection of value.Value: a "kind"-tagged
// object with payload fields value / columns+rows / message depending on
// kind. Marshaling a Value that came from the engine always produces one
// of these; unmarshaling one reconstructs the corresponding value.Value.
type WireValue struct {
	v value.Value
}

// ToWireValue wraps an engine Value for JSON serialization.
func ToWireValue(v value.Value) WireValue { return WireValue{v: v} }

// Value unwraps back to the engine's native representation.
func (w WireValue) Value() value.Value { return w.v }

type wireShape struct {
	Kind    string      `json:"kind"`
	Value   *float64    `json:"value,omitempty"`
	Values  []float64   `json:"-"`
	Columns []string    `json:"columns,omitempty"`
	Rows    [][]float64 `json:"rows,omitempty"`
	Message string      `json:"message,omitempty"`
}

// MarshalJSON implements the §6 discriminated-union wire shape. Vector
// payloads use the field name "value" for both scalar and vector kinds,
// matching the source format's single `value` key.
func (w WireValue) MarshalJSON() ([]byte, error) {
	switch w.v.Kind {
	case value.KindScalar:
		return json.Marshal(struct {
			Kind  string  `json:"kind"`
			Value float64 `json:"value"`
		}{"scalar", w.v.Scalar})
	case value.KindVector:
		return json.Marshal(struct {
			Kind  string    `json:"kind"`
			Value []float64 `json:"value"`
		}{"vector", nonNilVector(w.v.Vector)})
	case value.KindTable:
		return json.Marshal(struct {
			Kind    string      `json:"kind"`
			Columns []string    `json:"columns"`
			Rows    [][]float64 `json:"rows"`
		}{"table", nonNilColumns(w.v.Table.Columns), nonNilRows(w.v.Table.Rows)})
	case value.KindError:
		return json.Marshal(struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{"error", w.v.Message})
	default:
		return nil, fmt.Errorf("snapshot: unknown value kind %v", w.v.Kind)
	}
}

func nonNilVector(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

func nonNilColumns(c []string) []string {
	if c == nil {
		return []string{}
	}
	return c
}

func nonNilRows(r [][]float64) [][]float64 {
	if r == nil {
		return [][]float64{}
	}
	return r
}

// UnmarshalJSON reconstructs a value.Value from its wire shape.
func (w *WireValue) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind    string          `json:"kind"`
		Value   json.RawMessage `json:"value"`
		Columns []string        `json:"columns"`
		Rows    [][]float64     `json:"rows"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Kind {
	case "scalar":
		var s float64
		if len(probe.Value) > 0 {
			if err := json.Unmarshal(probe.Value, &s); err != nil {
				return err
			}
		}
		w.v = value.NewScalar(s)
	case "vector":
		var vec []float64
		if len(probe.Value) > 0 {
			if err := json.Unmarshal(probe.Value, &vec); err != nil {
				return err
			}
		}
		w.v = value.NewVector(vec)
	case "table":
		w.v = value.NewTable(probe.Columns, probe.Rows)
	case "error":
		w.v = value.NewError("%s", probe.Message)
	default:
		return fmt.Errorf("snapshot: unknown value kind %q", probe.Kind)
	}
	return nil
}

// ValuesToWire projects a node-id → Value map to its wire form.
func ValuesToWire(values map[string]value.Value) map[string]WireValue {
	out := make(map[string]WireValue, len(values))
	for k, v := range values {
		out[k] = ToWireValue(v)
	}
	return out
}
