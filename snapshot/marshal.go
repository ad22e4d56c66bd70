package snapshot

import (
	"encoding/json"

	"github.com/chainsolve/dataflow-engine/value"
)

func marshalResult(values map[string]value.Value, diags []Diagnostic, elapsedUs uint64, trace []TraceEntry, partial bool) ([]byte, error) {
	return json.Marshal(struct {
		Values      map[string]WireValue `json:"values"`
		Diagnostics []Diagnostic         `json:"diagnostics"`
		ElapsedUs   uint64               `json:"elapsedUs"`
		Trace       []TraceEntry         `json:"trace,omitempty"`
		Partial     bool                 `json:"partial"`
	}{ValuesToWire(values), diags, elapsedUs, trace, partial})
}

func marshalIncremental(r IncrementalEvalResult) ([]byte, error) {
	return json.Marshal(struct {
		ChangedValues  map[string]WireValue `json:"changedValues"`
		Diagnostics    []Diagnostic         `json:"diagnostics"`
		ElapsedUs      uint64               `json:"elapsedUs"`
		EvaluatedCount int                  `json:"evaluatedCount"`
		TotalCount     int                  `json:"totalCount"`
		Trace          []TraceEntry         `json:"trace,omitempty"`
		Partial        bool                 `json:"partial"`
	}{
		ValuesToWire(r.ChangedValues), r.Diagnostics, r.ElapsedUs,
		r.EvaluatedCount, r.TotalCount, r.Trace, r.Partial,
	})
}

// ErrorEnvelope is returned instead of a result when an entry point
// cannot even begin (bad version, malformed payload, bad options).
type ErrorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON wraps the envelope in the `{"error": {...}}` shape of §6.
func (e ErrorEnvelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}{struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{e.Code, e.Message}})
}
