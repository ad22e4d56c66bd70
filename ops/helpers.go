package ops

import (
	"math"

	"github.com/chainsolve/dataflow-engine/value"
)

// DatasetLookup resolves a dataset id to its backing slice, as registered
// out-of-band through the engine's dataset registry. A lookup miss is
// reported the same way an absent input would be.
type DatasetLookup func(id string) ([]float64, bool)

// portValue returns the Value bound to port, or Scalar(NaN) if the port
// has no resolved input — the absent-input rule of spec §4.1/§4.2.
func portValue(inputs map[string]value.Value, port string) value.Value {
	if v, ok := inputs[port]; ok {
		return v
	}
	return value.NewScalar(math.NaN())
}

// scalarOrNaN extracts port's scalar payload, or NaN if absent or not a
// scalar. Used by domain formulas, which operate on scalars only.
func scalarOrNaN(inputs map[string]value.Value, port string) float64 {
	v, ok := inputs[port]
	if !ok {
		return math.NaN()
	}
	s, ok := v.AsScalar()
	if !ok {
		return math.NaN()
	}
	return s
}

// unaryBroadcast applies f across whatever shape is bound to port "a"
// (scalar, vector, table — or Scalar(NaN) if absent), per the unary row
// of the broadcasting matrix.
func unaryBroadcast(inputs map[string]value.Value, f func(float64) float64) value.Value {
	return value.Broadcast1(portValue(inputs, "a"), f)
}

// binaryBroadcast applies f across ports "a" and "b" per the broadcasting
// matrix of spec §4.1.
func binaryBroadcast(inputs map[string]value.Value, f func(float64, float64) float64) value.Value {
	return value.Broadcast2(portValue(inputs, "a"), portValue(inputs, "b"), f)
}

// requireVector fetches port as a Vector. ok is false iff the vector could
// not be obtained, in which case errVal is the Error{"<name>: no input"} /
// Error{"<name>: expected vector"} to return from the op.
func requireVector(inputs map[string]value.Value, port, name string) (vec []float64, errVal value.Value, ok bool) {
	v, present := inputs[port]
	if !present {
		return nil, value.NewError("%s: no input", name), false
	}
	if v.Kind == value.KindError {
		return nil, v, false
	}
	vec, ok = v.AsVector()
	if !ok {
		return nil, value.NewError("%s: expected vector", name), false
	}
	return vec, value.Value{}, true
}

// requireTable fetches port as a Table, on the same contract as requireVector.
func requireTable(inputs map[string]value.Value, port, name string) (tbl value.Table, errVal value.Value, ok bool) {
	v, present := inputs[port]
	if !present {
		return value.Table{}, value.NewError("%s: no input", name), false
	}
	if v.Kind == value.KindError {
		return value.Table{}, v, false
	}
	tbl, ok = v.AsTable()
	if !ok {
		return value.Table{}, value.NewError("%s: expected table", name), false
	}
	return tbl, value.Value{}, true
}

// guardZero returns an Error{"<opName>: <varName> = 0"} if x is zero,
// otherwise ok=false so the caller proceeds with the computation.
func guardZero(opName, varName string, x float64) (value.Value, bool) {
	if x == 0 {
		return value.NewError("%s: %s = 0", opName, varName), true
	}
	return value.Value{}, false
}

// errorf is a small readability helper for the "<OpName>: <constraint>"
// message contract pinned by spec §7/§8.
func errorf(format string, args ...any) value.Value {
	return value.NewError(format, args...)
}
