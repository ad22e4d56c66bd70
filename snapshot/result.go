package snapshot

import "github.com/chainsolve/dataflow-engine/value"

// DiagLevel is the severity of a Diagnostic.
type DiagLevel int

const (
	DiagInfo DiagLevel = iota
	DiagWarning
	DiagError
)

// String renders the wire's lowercase level name.
func (l DiagLevel) String() string {
	switch l {
	case DiagInfo:
		return "info"
	case DiagWarning:
		return "warning"
	case DiagError:
		return "error"
	default:
		return "error"
	}
}

// MarshalJSON emits the lowercase level name per §6.
func (l DiagLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON parses the lowercase level name.
func (l *DiagLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"info"`:
		*l = DiagInfo
	case `"warning"`:
		*l = DiagWarning
	case `"error"`:
		*l = DiagError
	}
	return nil
}

// Diagnostic is a non-fatal, machine-coded observation about graph
// structure or evaluation, carried alongside a result rather than raised
// as an error. NodeID is omitted from the wire form when empty.
type Diagnostic struct {
	NodeID  string    `json:"nodeId,omitempty"`
	Level   DiagLevel `json:"level"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Diagnostic codes, per §4.4 and the §6/§7 envelope vocabulary.
const (
	CodeUnsupportedVersion = "UNSUPPORTED_VERSION"
	CodeDanglingEdge       = "DANGLING_EDGE"
	CodeCycleDetected      = "CYCLE_DETECTED"
	CodeUnknownBlock       = "UNKNOWN_BLOCK"
	CodeMissingInput       = "MISSING_INPUT"
	CodeInvalidSnapshot    = "INVALID_SNAPSHOT"
	CodeSerializeFailed    = "SERIALIZE_FAILED"
	CodeInvalidOptions     = "INVALID_OPTIONS"
	CodeTraceTruncated     = "TRACE_TRUNCATED"
)

// ValueSummary is the compact trace projection of a Value: scalars carry
// their value, vectors carry a length and the first 5 elements, tables
// carry row/column counts, errors carry their message.
type ValueSummary struct {
	Kind    string    `json:"kind"`
	Value   float64   `json:"value,omitempty"`
	Length  int       `json:"length,omitempty"`
	Sample  []float64 `json:"sample,omitempty"`
	Rows    int       `json:"rows,omitempty"`
	Columns int       `json:"columns,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Summarize projects v into its trace-entry form.
func Summarize(v value.Value) ValueSummary {
	switch v.Kind {
	case value.KindScalar:
		return ValueSummary{Kind: "scalar", Value: v.Scalar}
	case value.KindVector:
		n := len(v.Vector)
		sampleLen := n
		if sampleLen > 5 {
			sampleLen = 5
		}
		sample := make([]float64, sampleLen)
		copy(sample, v.Vector[:sampleLen])
		return ValueSummary{Kind: "vector", Length: n, Sample: sample}
	case value.KindTable:
		return ValueSummary{Kind: "table", Rows: len(v.Table.Rows), Columns: len(v.Table.Columns)}
	case value.KindError:
		return ValueSummary{Kind: "error", Message: v.Message}
	default:
		return ValueSummary{Kind: "unknown"}
	}
}

// TraceEntry records one node's evaluation for diagnostics/replay.
type TraceEntry struct {
	NodeID      string                  `json:"nodeId"`
	OpID        string                  `json:"opId"`
	Inputs      map[string]ValueSummary `json:"inputs"`
	Output      ValueSummary            `json:"output"`
	Diagnostics []Diagnostic            `json:"diagnostics,omitempty"`
}

// EvalResult is the outcome of a stateless run (Engine.Run, eval.Evaluate).
// Engine.Load does not produce one; it returns diagnostics only.
type EvalResult struct {
	Values      map[string]value.Value `json:"-"`
	Diagnostics []Diagnostic           `json:"diagnostics"`
	ElapsedUs   uint64                  `json:"elapsedUs"`
	Trace       []TraceEntry           `json:"trace,omitempty"`
	Partial     bool                   `json:"partial"`
}

// MarshalJSON projects Values to their wire shape alongside the plain
// fields; Go's encoding/json cannot express "rename a field's marshaling"
// via struct tags alone when the type itself needs translation.
func (r EvalResult) MarshalJSON() ([]byte, error) {
	return marshalResult(r.Values, r.Diagnostics, r.ElapsedUs, r.Trace, r.Partial)
}

// IncrementalEvalResult is the outcome of a patch/set-input/evaluate-dirty
// call: only the values the call actually touched.
type IncrementalEvalResult struct {
	ChangedValues  map[string]value.Value `json:"-"`
	Diagnostics    []Diagnostic           `json:"diagnostics"`
	ElapsedUs      uint64                 `json:"elapsedUs"`
	EvaluatedCount int                    `json:"evaluatedCount"`
	TotalCount     int                    `json:"totalCount"`
	Trace          []TraceEntry          `json:"trace,omitempty"`
	Partial        bool                  `json:"partial"`
}

func (r IncrementalEvalResult) MarshalJSON() ([]byte, error) {
	return marshalIncremental(r)
}
